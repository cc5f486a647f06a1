package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"calaudit/internal"
)

var scopes = []string{
	calendar.CalendarEventsReadonlyScope,
	gmail.GmailSendScope,
	oauth2api.UserinfoEmailScope,
}

type Client struct {
	oauthCfg *oauth2.Config
	log      *zap.SugaredLogger
}

func NewClient(credJSON []byte, log *zap.SugaredLogger) (*Client, error) {
	oauthCfg, err := google.ConfigFromJSON(credJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("google: parsing credentials file: %w", err)
	}
	return &Client{
		oauthCfg: oauthCfg,
		log:      log,
	}, nil
}

const defaultSleep = 5 * time.Second

// Upcoming lists the events of the window with recurring events expanded
// into single instances, ordered by start time.
func (c *Client) Upcoming(ctx context.Context, cal *internal.Calendar, window internal.Window) (internal.Iterator, error) {
	svc, err := c.calendarSvc(ctx, &cal.Account)
	if err != nil {
		return nil, err
	}
	eventsCall := svc.Events.
		List(cal.ProviderID).
		Context(ctx).
		ShowDeleted(false).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(window.From.Format(time.RFC3339)).
		TimeMax(window.To.Format(time.RFC3339))

	it := newEventIterator()
	go c.events(cal, eventsCall, it.events)
	return it, nil
}

func (c *Client) events(cal *internal.Calendar, call *calendar.EventsListCall, eventCh chan eventOrError) {
	c.log.Debugw("checking for events", "calendar", cal.ID)

	defer close(eventCh)

	var nextPageToken string
	for {
		events, err := call.PageToken(nextPageToken).Do()
		if err != nil {
			if shouldRetry(err) {
				time.Sleep(defaultSleep)
				continue
			}
			eventCh <- eventOrError{err: err}
			return
		}

		for _, item := range events.Items {
			eventCh <- eventOrError{e: newEvent(item)}
		}
		nextPageToken = events.NextPageToken
		if nextPageToken == "" {
			return
		}
	}
}

// Email resolves the address the account authenticated as.
func (c *Client) Email(ctx context.Context, acc *internal.Account) (string, error) {
	tok, err := parseToken(acc.Auth)
	if err != nil {
		return "", err
	}
	return c.EmailForToken(ctx, tok)
}

func (c *Client) EmailForToken(ctx context.Context, tok *oauth2.Token) (string, error) {
	svc, err := oauth2api.NewService(ctx, option.WithHTTPClient(c.oauthCfg.Client(ctx, tok)))
	if err != nil {
		return "", err
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return info.Email, nil
}

func (c *Client) Login(ctx context.Context, notify func(authURL string)) (*oauth2.Token, error) {
	state := fmt.Sprintf("calaudit-%d", time.Now().UTC().Nanosecond())
	authURL := c.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	notify(authURL)

	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    ":8080",
		Handler: mux,
	}

	var (
		token   *oauth2.Token
		authErr error
	)

	mux.HandleFunc("/calaudit", func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			go server.Shutdown(ctx)
		}()

		query := req.URL.Query()
		if query.Get("state") != state {
			authErr = errors.New("oauth link is not valid")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		token, authErr = c.oauthCfg.Exchange(ctx, query.Get("code"))
		if authErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "Unable to retrieve token:", authErr)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "All good, you can close this window!")
	})

	serverCh := make(chan struct{})
	var svrErr error
	go func() {
		svrErr = server.ListenAndServe()
		close(serverCh)
	}()

	<-serverCh

	if svrErr != nil && svrErr != http.ErrServerClosed {
		return nil, svrErr
	}
	if authErr != nil {
		return nil, authErr
	}
	return token, nil
}

func (c *Client) calendarSvc(ctx context.Context, acc *internal.Account) (*calendar.Service, error) {
	tok, err := parseToken(acc.Auth)
	if err != nil {
		return nil, err
	}
	return calendar.NewService(ctx, option.WithHTTPClient(c.oauthCfg.Client(ctx, tok)))
}

func (c *Client) gmailSvc(ctx context.Context, acc *internal.Account) (*gmail.Service, error) {
	tok, err := parseToken(acc.Auth)
	if err != nil {
		return nil, err
	}
	return gmail.NewService(ctx, option.WithHTTPClient(c.oauthCfg.Client(ctx, tok)))
}

func parseToken(auth string) (*oauth2.Token, error) {
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(auth), &tok); err != nil {
		return nil, fmt.Errorf("google: parsing stored token: %w", err)
	}
	return &tok, nil
}

func shouldRetry(err error) bool {
	return errIsReason(err, "rateLimitExceeded")
}

func errIsReason(err error, reason string) bool {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return false
	}

	for _, err := range gErr.Errors {
		switch err.Reason {
		case reason:
			return true
		}
	}
	return false
}

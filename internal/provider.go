package internal

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

type Mux interface {
	Get(platform string) (Provider, error)
}

// Provider is a calendar platform the auditor can read from. Upcoming must
// return an error when the platform is misconfigured, never a silently
// empty iterator.
type Provider interface {
	Login(_ context.Context, notify func(authURL string)) (*oauth2.Token, error)
	Email(_ context.Context, _ *Account) (string, error)
	Upcoming(_ context.Context, _ *Calendar, _ Window) (Iterator, error)
}

type Iterator interface {
	Next() bool
	Event() *Event
	Err() error
}

// Reporter delivers the audit report on behalf of "as". Send is fire and
// forget; callers log failures and move on.
type Reporter interface {
	Send(ctx context.Context, as *Account, to, subject, htmlBody string) error
}

// Window is the half-open time range [From, To) scanned by one audit run.
type Window struct {
	From time.Time
	To   time.Time
}

func NewWindow(now time.Time, days int) Window {
	return Window{From: now, To: now.AddDate(0, 0, days)}
}

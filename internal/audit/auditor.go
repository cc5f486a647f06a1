package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"calaudit/internal"
	"calaudit/internal/report"
)

// DefaultLookaheadDays is how far ahead a run scans when not configured.
const DefaultLookaheadDays = 7

type Storage interface {
	AuditCalendars(ctx context.Context) ([]*internal.Calendar, error)
}

// Auditor drives one audit run: list the upcoming window, classify, and
// mail the report when anything was flagged. Every collaborator failure is
// logged and swallowed; a run is a no-op rather than a crash since it
// usually fires unattended from the scheduler.
type Auditor struct {
	log      *zap.SugaredLogger
	mux      internal.Mux
	storage  Storage
	reporter internal.Reporter

	// Lookahead is the scanned window in days ahead of now.
	Lookahead int
	// Recipient overrides the account's own address as report destination.
	Recipient string

	now func() time.Time
}

func New(log *zap.SugaredLogger, mux internal.Mux, storage Storage, reporter internal.Reporter) *Auditor {
	return &Auditor{
		log:       log,
		mux:       mux,
		storage:   storage,
		reporter:  reporter,
		Lookahead: DefaultLookaheadDays,
		now:       time.Now,
	}
}

func (a *Auditor) Run(ctx context.Context) {
	cals, err := a.storage.AuditCalendars(ctx)
	if err != nil {
		a.log.Errorw("unable to load audited calendars", "err", err)
		return
	}
	if len(cals) == 0 {
		a.log.Warn("no calendar configured, run `calaudit configure` first")
		return
	}

	window := internal.NewWindow(a.now().UTC(), a.Lookahead)
	for _, cal := range cals {
		if ctx.Err() != nil {
			return
		}
		a.auditCalendar(ctx, cal, window)
	}
}

func (a *Auditor) auditCalendar(ctx context.Context, cal *internal.Calendar, window internal.Window) {
	provider, err := a.mux.Get(cal.Account.Platform)
	if err != nil {
		a.log.Errorw("unable to load provider", "calendar", cal.ID, "err", err)
		return
	}

	it, err := provider.Upcoming(ctx, cal, window)
	if err != nil {
		a.logListFailure(cal, err)
		return
	}
	var events []*internal.Event
	for it.Next() {
		events = append(events, it.Event())
	}
	if err := it.Err(); err != nil {
		a.logListFailure(cal, err)
		return
	}

	flagged := Unconfirmed(events)
	if len(flagged) == 0 {
		a.log.Infow("every upcoming meeting has a confirmation",
			"calendar", cal.ID, "events", len(events))
		return
	}

	body, err := report.Render(flagged)
	if err != nil {
		a.log.Errorw("unable to render report", "calendar", cal.ID, "err", err)
		return
	}

	to := a.Recipient
	if to == "" {
		to, err = provider.Email(ctx, &cal.Account)
		if err != nil {
			a.log.Warnw("unable to resolve account email, using account name",
				"calendar", cal.ID, "err", err)
			to = cal.Account.Name
		}
	}

	// Delivery is best effort; the classification already succeeded.
	if err := a.reporter.Send(ctx, &cal.Account, to, report.Subject(len(flagged)), body); err != nil {
		a.log.Errorw("unable to deliver report", "calendar", cal.ID, "to", to, "err", err)
		return
	}
	a.log.Infow("report sent", "calendar", cal.ID, "meetings", len(flagged), "to", to)
}

func (a *Auditor) logListFailure(cal *internal.Calendar, err error) {
	a.log.Errorw("unable to list events; check that the Calendar API is enabled "+
		"for the project and the stored token is still valid",
		"calendar", cal.ID, "err", err)
}

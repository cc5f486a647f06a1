package google

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"calaudit/internal"
)

type eventOrError struct {
	e   *internal.Event
	err error
}

type eventIterator struct {
	events  chan eventOrError
	current eventOrError
}

func newEventIterator() *eventIterator {
	return &eventIterator{
		events: make(chan eventOrError),
	}
}

func (it *eventIterator) Next() (ok bool) {
	it.current, ok = <-it.events
	if it.current.err != nil {
		return false
	}
	return ok
}

func (it *eventIterator) Event() *internal.Event {
	c := it.current
	if c.e == nil && c.err == nil {
		panic("google: Event() called before Next()")
	}
	return c.e
}

func (it *eventIterator) Err() error {
	return it.current.err
}

const dateOnlyFormat = "2006-01-02"

func newEvent(event *calendar.Event) *internal.Event {
	e := &internal.Event{
		ID:            event.Id,
		Summary:       event.Summary,
		HTMLLink:      event.HtmlLink,
		OrganizedByMe: event.Organizer != nil && event.Organizer.Self,
	}

	// Timed events carry DateTime, all-day events only a Date, which
	// resolves to midnight local time.
	if event.Start != nil {
		if event.Start.DateTime != "" {
			e.StartsAt, _ = time.Parse(time.RFC3339, event.Start.DateTime)
		} else if event.Start.Date != "" {
			e.StartsAt, _ = time.ParseInLocation(dateOnlyFormat, event.Start.Date, time.Local)
			e.AllDay = true
		}
	}

	for _, a := range event.Attendees {
		e.Attendees = append(e.Attendees, internal.Attendee{
			Email:          a.Email,
			Self:           a.Self,
			ResponseStatus: internal.ResponseStatus(a.ResponseStatus),
		})
	}
	return e
}

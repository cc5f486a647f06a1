package audit

import (
	"fmt"

	"calaudit/internal"
)

// PlaceholderTitle is used for events saved without a summary, mirroring
// what Google Calendar renders for them.
const PlaceholderTitle = "(no title)"

var statusGlyphs = map[internal.ResponseStatus]string{
	internal.NeedsAction: "❓",
	internal.Declined:    "❌",
	internal.Tentative:   "🤔",
	internal.Accepted:    "✅",
}

// Unconfirmed filters events down to the meetings the calendar owner
// organized where no invitee accepted or tentatively accepted, preserving
// input order. It never fails: events missing an organizer flag or an
// attendee list simply don't qualify.
func Unconfirmed(events []*internal.Event) []*internal.FlaggedMeeting {
	var flagged []*internal.FlaggedMeeting
	for _, ev := range events {
		if !qualifies(ev) {
			continue
		}
		flagged = append(flagged, newFlaggedMeeting(ev))
	}
	return flagged
}

func qualifies(ev *internal.Event) bool {
	if ev == nil || !ev.OrganizedByMe {
		return false
	}
	if len(ev.Attendees) == 0 {
		// Nobody was invited, so there is nobody to chase.
		return false
	}
	for _, a := range ev.Attendees {
		if isSelf(a) {
			continue
		}
		if a.ResponseStatus.Positive() {
			return false
		}
	}
	return true
}

func newFlaggedMeeting(ev *internal.Event) *internal.FlaggedMeeting {
	m := &internal.FlaggedMeeting{
		Title: ev.Summary,
		When:  ev.StartsAt,
		Link:  ev.HTMLLink,
	}
	if m.Title == "" {
		m.Title = PlaceholderTitle
	}
	for _, a := range ev.Attendees {
		if isSelf(a) {
			continue
		}
		m.Attendees = append(m.Attendees, fmt.Sprintf("%s (%s)", a.Email, statusGlyphs[a.ResponseStatus]))
	}
	m.AttendeeCount = len(m.Attendees)
	return m
}

// isSelf is the one place that decides whether an attendee entry is the
// organizer's own; both the qualification check and the summary builder
// go through it.
func isSelf(a internal.Attendee) bool {
	return a.Self
}

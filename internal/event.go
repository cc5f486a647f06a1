package internal

import "time"

// Event is a calendar event the way the provider reported it, relative to
// the account that fetched it: OrganizedByMe and Attendee.Self are already
// resolved against that account.
type Event struct {
	ID            string
	Summary       string
	StartsAt      time.Time
	AllDay        bool
	HTMLLink      string
	OrganizedByMe bool
	Attendees     []Attendee
}

type Attendee struct {
	Email          string
	Self           bool
	ResponseStatus ResponseStatus
}

type ResponseStatus string

func (s ResponseStatus) String() string {
	return string(s)
}

var (
	NeedsAction ResponseStatus = "needsAction"
	Declined    ResponseStatus = "declined"
	Tentative   ResponseStatus = "tentative"
	Accepted    ResponseStatus = "accepted"
)

// Positive reports whether the status counts as a confirmation.
func (s ResponseStatus) Positive() bool {
	return s == Accepted || s == Tentative
}

// FlaggedMeeting is the report-ready view of an event nobody confirmed.
// It lives for a single run, between the classifier and the reporter.
type FlaggedMeeting struct {
	Title         string
	When          time.Time
	Attendees     []string
	AttendeeCount int
	Link          string
}

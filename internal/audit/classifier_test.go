package audit

import (
	"reflect"
	"testing"
	"time"

	"calaudit/internal"
)

var meetingStart = time.Date(2026, time.September, 3, 14, 30, 0, 0, time.UTC)

func newTestEvent(muts ...func(*internal.Event)) *internal.Event {
	ev := &internal.Event{
		ID:            "ev-1",
		Summary:       "Quarterly review",
		StartsAt:      meetingStart,
		HTMLLink:      "https://calendar.example.com/event?eid=ev-1",
		OrganizedByMe: true,
		Attendees: []internal.Attendee{
			{Email: "a@x.com", ResponseStatus: internal.NeedsAction},
		},
	}
	for _, mut := range muts {
		mut(ev)
	}
	return ev
}

func TestUnconfirmed_SkipsEventsOrganizedByOthers(t *testing.T) {
	events := []*internal.Event{
		newTestEvent(func(ev *internal.Event) { ev.OrganizedByMe = false }),
	}
	if got := Unconfirmed(events); len(got) != 0 {
		t.Errorf("expected no flagged meetings, got %d", len(got))
	}
}

func TestUnconfirmed_SkipsEventsWithoutAttendees(t *testing.T) {
	t.Run("nil attendees", func(t *testing.T) {
		events := []*internal.Event{
			newTestEvent(func(ev *internal.Event) { ev.Attendees = nil }),
		}
		if got := Unconfirmed(events); len(got) != 0 {
			t.Errorf("expected no flagged meetings, got %d", len(got))
		}
	})
	t.Run("empty attendees", func(t *testing.T) {
		events := []*internal.Event{
			newTestEvent(func(ev *internal.Event) { ev.Attendees = []internal.Attendee{} }),
		}
		if got := Unconfirmed(events); len(got) != 0 {
			t.Errorf("expected no flagged meetings, got %d", len(got))
		}
	})
}

func TestUnconfirmed_SkipsWhenAnyoneConfirmed(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		events := []*internal.Event{
			newTestEvent(func(ev *internal.Event) {
				ev.Attendees = []internal.Attendee{
					{Email: "a@x.com", ResponseStatus: internal.Accepted},
				}
			}),
		}
		if got := Unconfirmed(events); len(got) != 0 {
			t.Errorf("expected no flagged meetings, got %d", len(got))
		}
	})
	t.Run("one tentative among declined", func(t *testing.T) {
		events := []*internal.Event{
			newTestEvent(func(ev *internal.Event) {
				ev.Attendees = []internal.Attendee{
					{Email: "a@x.com", ResponseStatus: internal.Declined},
					{Email: "b@x.com", ResponseStatus: internal.Tentative},
				}
			}),
		}
		if got := Unconfirmed(events); len(got) != 0 {
			t.Errorf("a tentative response should disqualify the event, got %d flagged", len(got))
		}
	})
	t.Run("organizer's own acceptance does not count", func(t *testing.T) {
		events := []*internal.Event{
			newTestEvent(func(ev *internal.Event) {
				ev.Attendees = []internal.Attendee{
					{Email: "me@x.com", Self: true, ResponseStatus: internal.Accepted},
					{Email: "a@x.com", ResponseStatus: internal.NeedsAction},
				}
			}),
		}
		got := Unconfirmed(events)
		if len(got) != 1 {
			t.Fatalf("expected 1 flagged meeting, got %d", len(got))
		}
		if want := []string{"a@x.com (❓)"}; !reflect.DeepEqual(got[0].Attendees, want) {
			t.Errorf("attendees = %v, want %v", got[0].Attendees, want)
		}
		if got[0].AttendeeCount != 1 {
			t.Errorf("AttendeeCount = %d, want 1", got[0].AttendeeCount)
		}
	})
}

func TestUnconfirmed_FlagsFullyUnconfirmedMeeting(t *testing.T) {
	events := []*internal.Event{newTestEvent()}

	got := Unconfirmed(events)
	if len(got) != 1 {
		t.Fatalf("expected 1 flagged meeting, got %d", len(got))
	}
	want := &internal.FlaggedMeeting{
		Title:         "Quarterly review",
		When:          meetingStart,
		Attendees:     []string{"a@x.com (❓)"},
		AttendeeCount: 1,
		Link:          "https://calendar.example.com/event?eid=ev-1",
	}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("flagged = %+v, want %+v", got[0], want)
	}
}

func TestUnconfirmed_StatusGlyphs(t *testing.T) {
	events := []*internal.Event{
		newTestEvent(func(ev *internal.Event) {
			ev.Attendees = []internal.Attendee{
				{Email: "a@x.com", ResponseStatus: internal.NeedsAction},
				{Email: "b@x.com", ResponseStatus: internal.Declined},
				{Email: "c@x.com", ResponseStatus: "somethingElse"},
			}
		}),
	}

	got := Unconfirmed(events)
	if len(got) != 1 {
		t.Fatalf("expected 1 flagged meeting, got %d", len(got))
	}
	want := []string{"a@x.com (❓)", "b@x.com (❌)", "c@x.com ()"}
	if !reflect.DeepEqual(got[0].Attendees, want) {
		t.Errorf("attendees = %v, want %v", got[0].Attendees, want)
	}
}

func TestUnconfirmed_PlaceholderTitle(t *testing.T) {
	events := []*internal.Event{
		newTestEvent(func(ev *internal.Event) { ev.Summary = "" }),
	}

	got := Unconfirmed(events)
	if len(got) != 1 {
		t.Fatalf("expected 1 flagged meeting, got %d", len(got))
	}
	if got[0].Title != PlaceholderTitle {
		t.Errorf("Title = %q, want %q", got[0].Title, PlaceholderTitle)
	}
}

func TestUnconfirmed_PreservesOrder(t *testing.T) {
	events := []*internal.Event{
		newTestEvent(func(ev *internal.Event) { ev.Summary = "first" }),
		newTestEvent(func(ev *internal.Event) {
			ev.Summary = "skipped"
			ev.OrganizedByMe = false
		}),
		newTestEvent(func(ev *internal.Event) { ev.Summary = "second" }),
		newTestEvent(func(ev *internal.Event) { ev.Summary = "third" }),
	}

	got := Unconfirmed(events)
	titles := make([]string, len(got))
	for i, m := range got {
		titles[i] = m.Title
	}
	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(titles, want) {
		t.Errorf("titles = %v, want %v", titles, want)
	}
}

func TestUnconfirmed_Deterministic(t *testing.T) {
	events := []*internal.Event{
		newTestEvent(),
		newTestEvent(func(ev *internal.Event) { ev.Summary = "" }),
		newTestEvent(func(ev *internal.Event) { ev.OrganizedByMe = false }),
	}

	first := Unconfirmed(events)
	second := Unconfirmed(events)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ:\n%+v\n%+v", first, second)
	}
}

func TestUnconfirmed_EmptyInput(t *testing.T) {
	if got := Unconfirmed(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %d", len(got))
	}
	if got := Unconfirmed([]*internal.Event{nil}); len(got) != 0 {
		t.Errorf("a nil record should be excluded, got %d", len(got))
	}
}

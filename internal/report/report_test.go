package report

import (
	"strings"
	"testing"
	"time"

	"calaudit/internal"
)

func TestRender(t *testing.T) {
	meetings := []*internal.FlaggedMeeting{
		{
			Title:         "Planning",
			When:          time.Date(2026, time.September, 3, 14, 30, 0, 0, time.UTC),
			Attendees:     []string{"a@x.com (❓)", "b@x.com (❌)"},
			AttendeeCount: 2,
			Link:          "https://calendar.example.com/event?eid=abc",
		},
	}

	body, err := Render(meetings)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Planning",
		"a@x.com (❓)",
		"b@x.com (❌)",
		`href="https://calendar.example.com/event?eid=abc"`,
		"Thu, 03 Sep 2026 14:30",
		"2 invitee(s)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body is missing %q:\n%s", want, body)
		}
	}
}

func TestRender_EscapesTitles(t *testing.T) {
	meetings := []*internal.FlaggedMeeting{
		{Title: `<script>alert("x")</script>`, AttendeeCount: 0},
	}

	body, err := Render(meetings)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Errorf("title was not escaped:\n%s", body)
	}
}

func TestSubject(t *testing.T) {
	if got := Subject(1); got != "1 meeting is still unconfirmed" {
		t.Errorf("Subject(1) = %q", got)
	}
	if got := Subject(3); got != "3 meetings are still unconfirmed" {
		t.Errorf("Subject(3) = %q", got)
	}
}

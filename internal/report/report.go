// Package report renders the audit result as the HTML body of the email.
// It is pure presentation: the classifier decides, this package formats.
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"calaudit/internal"
)

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"when": formatWhen,
}).Parse(`<html>
<body>
<p>The following meetings you organized have no confirmed attendee yet:</p>
{{range .}}<div style="margin-bottom:1em">
<p><b><a href="{{.Link}}">{{.Title}}</a></b><br>
{{when .When}} &mdash; {{.AttendeeCount}} invitee(s)</p>
<ul>
{{range .Attendees}}<li>{{.}}</li>
{{end}}</ul>
</div>
{{end}}<p>Consider following up or rescheduling.</p>
</body>
</html>
`))

func Render(meetings []*internal.FlaggedMeeting) (string, error) {
	var b strings.Builder
	if err := reportTmpl.Execute(&b, meetings); err != nil {
		return "", fmt.Errorf("report: rendering: %w", err)
	}
	return b.String(), nil
}

func Subject(n int) string {
	if n == 1 {
		return "1 meeting is still unconfirmed"
	}
	return fmt.Sprintf("%d meetings are still unconfirmed", n)
}

func formatWhen(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 15:04")
}

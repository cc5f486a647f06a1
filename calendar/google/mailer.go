package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/gmail/v1"

	"calaudit/internal"
)

// Mailer sends the report through the Gmail account the audit runs as.
type Mailer struct {
	client *Client
}

func NewMailer(client *Client) *Mailer {
	return &Mailer{
		client: client,
	}
}

func (m *Mailer) Send(ctx context.Context, as *internal.Account, to, subject, htmlBody string) error {
	svc, err := m.client.gmailSvc(ctx, as)
	if err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	_, err = svc.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(msg.Bytes()),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("google: sending report: %w", err)
	}
	return nil
}

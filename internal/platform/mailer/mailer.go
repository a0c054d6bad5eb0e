// Package mailer sends transactional email with bounded retries.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a plain-text email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Sender delivers a message once.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends mail through a single SMTP host.
type SMTPSender struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

// NewSMTPSender builds a sender with PLAIN auth when username is set.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPSender{
		Addr: fmt.Sprintf("%s:%d", host, port),
		From: from,
		Auth: auth,
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(s.Addr, s.Auth, s.From, msg.To, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", s.Addr, err)
	}
	return nil
}

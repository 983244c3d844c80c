package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer delivers mail over plain SMTP with optional AUTH. It holds no
// connection; each send dials fresh, which is fine at password-reset volume.
type SMTPMailer struct {
	Addr     string // host:port
	From     string
	Username string
	Password string
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	subject := "Reset your password"
	body := strings.Join([]string{
		"Hello,",
		"",
		"A password reset was requested for your account. Open the link below to choose a new password. The link expires in one hour.",
		"",
		resetURL,
		"",
		"If you did not request this, you can ignore this email.",
	}, "\r\n")

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.From, to, subject, body)

	var auth smtp.Auth
	if m.Username != "" {
		host := m.Addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.Username, m.Password, host)
	}

	return smtp.SendMail(m.Addr, auth, m.From, []string{to}, []byte(msg))
}

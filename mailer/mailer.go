package mailer

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends a single plain-text transactional email. The interface exists
// so handlers can take a recording fake in tests; delivery methods other than
// SMTP would also slot in here.
type Mailer interface {
	Send(from, to, subject, body string) error
}

// SMTPMailer delivers through an authenticated SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

func (m *SMTPMailer) Send(from, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

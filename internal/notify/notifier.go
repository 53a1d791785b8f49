// Package notify delivers short account messages over SMTP. The transport is
// net/smtp behind the lifecycle service's Notifier interface so tests and
// dev setups can substitute their own.
package notify

import (
	"fmt"
	"log"
	"net/smtp"
)

// SMTPNotifier sends plain-text mail through a single SMTP relay.
type SMTPNotifier struct {
	addr     string
	from     string
	username string
	password string
	host     string
}

func NewSMTPNotifier(host string, port int, from, username, password string) *SMTPNotifier {
	return &SMTPNotifier{
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     from,
		username: username,
		password: password,
		host:     host,
	}
}

func (notifier *SMTPNotifier) Send(to string, subject string, body string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		notifier.from, to, subject, body,
	)

	var auth smtp.Auth
	if notifier.username != "" {
		auth = smtp.PlainAuth("", notifier.username, notifier.password, notifier.host)
	}

	if err := smtp.SendMail(notifier.addr, auth, notifier.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogNotifier writes messages to the process log instead of sending them.
// Used when no SMTP relay is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (notifier *LogNotifier) Send(to string, subject string, body string) error {
	log.Printf("notify (smtp disabled) to=%s subject=%q body=%q", to, subject, body)
	return nil
}

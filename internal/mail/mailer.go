package mail

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email. Implementations must be safe for
// concurrent use; callers dispatch fire-and-forget and only log failures.
type Mailer interface {
	SendTempPassword(to, name, tempPassword string) error
	SendChangeNotification(to, name, entityType, entityName, action string) error
}

// SendgridMailer delivers mail through the SendGrid API.
type SendgridMailer struct {
	apiKey      string
	from        string
	frontendURL string
}

// NewSendgridMailer creates a mailer. With an empty API key every send is a
// logged no-op, so local development works without a SendGrid account.
func NewSendgridMailer(apiKey, from, frontendURL string) *SendgridMailer {
	return &SendgridMailer{apiKey: apiKey, from: from, frontendURL: frontendURL}
}

// SendTempPassword mails a newly registered user their temporary password and
// a link to the login page.
func (m *SendgridMailer) SendTempPassword(to, name, tempPassword string) error {
	subject := "Uw account voor Kunstbeheer"
	body := fmt.Sprintf(
		"Beste %s,\n\nEr is een account voor u aangemaakt.\n\nTijdelijk wachtwoord: %s\n\nLog in via %s/login en wijzig uw wachtwoord direct.\n",
		name, tempPassword, m.frontendURL,
	)
	return m.send(to, name, subject, body)
}

// SendChangeNotification mails an admin that a collection entity changed.
func (m *SendgridMailer) SendChangeNotification(to, name, entityType, entityName, action string) error {
	subject := fmt.Sprintf("Kunstbeheer: %s %s", entityType, action)
	body := fmt.Sprintf(
		"Beste %s,\n\n%s '%s' is %s.\n\nBekijk de collectie via %s.\n",
		name, entityType, entityName, action, m.frontendURL,
	)
	return m.send(to, name, subject, body)
}

func (m *SendgridMailer) send(to, toName, subject, body string) error {
	if m.apiKey == "" {
		log.Printf("mail: no API key configured, skipping %q to %s", subject, to)
		return nil
	}

	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail("Kunstbeheer", m.from),
		subject,
		sgmail.NewEmail(toName, to),
		body,
		"",
	)
	resp, err := sendgrid.NewSendClient(m.apiKey).Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

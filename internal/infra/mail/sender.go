package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from, inboxTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		InboxTo:  inboxTo,
	}
}

// SendEventInquiryNotice mails the tasting room about a new private event
// inquiry so nobody has to watch the CRM for them.
func (s *EmailSender) SendEventInquiryNotice(lead *entity.Lead) error {
	data := EventInquiryEmailData{
		Name:            lead.Name,
		Email:           lead.Email,
		Phone:           lead.Phone,
		EventType:       lead.EventType,
		PreferredDate:   lead.PreferredDate,
		EstimatedGuests: lead.EstimatedGuests,
		Message:         lead.Message,
	}

	tmplPath := filepath.Join("templates", "event_inquiry.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.InboxTo)
	m.SetHeader("Subject", fmt.Sprintf("New event inquiry: %s (%s)", lead.Name, lead.EventType))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}

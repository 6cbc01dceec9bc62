package entity

import (
	"context"
	"time"
)

// Lead sources, one per website form.
const (
	SourceWaitlist       = "waitlist"
	SourceEventInquiry   = "event_inquiry"
	SourceWineClubSignup = "wine_club_signup"
	SourceContactMessage = "contact_message"
)

func IsValidSource(source string) bool {
	switch source {
	case SourceWaitlist, SourceEventInquiry, SourceWineClubSignup, SourceContactMessage:
		return true
	}
	return false
}

// Lead is one immutable form submission. Rows are never updated or
// deleted by this service; retention is handled elsewhere.
type Lead struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Name      string `json:"name,omitempty"` // combined name, when the form only collects one field
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	// Source-specific payload. Which of these are set depends on Source.
	Interest        string `json:"interest,omitempty"`
	MembershipTier  string `json:"membership_tier,omitempty"`
	EventType       string `json:"event_type,omitempty"`
	PreferredDate   string `json:"preferred_date,omitempty"`
	EstimatedGuests string `json:"estimated_guests,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Message         string `json:"message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
}

package ghl

import (
	"strings"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
)

// Forwarding outcomes. One attempt per lead, never retried.
const (
	OutcomeDelivered      = "delivered"
	OutcomeRejected       = "rejected"
	OutcomeTransportError = "transport_error"
)

// Result is the soft outcome of one forwarding attempt. It is logged and
// counted, never returned to the person who submitted the form.
type Result struct {
	Outcome string
	Status  int // upstream HTTP status, 0 when the request never completed
	Body    string
	Err     error
}

func (r Result) Delivered() bool {
	return r.Outcome == OutcomeDelivered
}

// LeadData is the relay endpoint's request shape, kept camelCase for the
// website's fetch calls.
type LeadData struct {
	Source          string `json:"source"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Interest        string `json:"interest,omitempty"`
	MembershipTier  string `json:"membershipTier,omitempty"`
	EventType       string `json:"eventType,omitempty"`
	PreferredDate   string `json:"preferredDate,omitempty"`
	EstimatedGuests string `json:"estimatedGuests,omitempty"`
	Message         string `json:"message,omitempty"`
	Subject         string `json:"subject,omitempty"`
}

func (d LeadData) ToLead() *entity.Lead {
	return &entity.Lead{
		Source:          d.Source,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Interest:        d.Interest,
		MembershipTier:  d.MembershipTier,
		EventType:       d.EventType,
		PreferredDate:   d.PreferredDate,
		EstimatedGuests: d.EstimatedGuests,
		Message:         d.Message,
		Subject:         d.Subject,
	}
}

// WebhookPayload is what GoHighLevel receives.
type WebhookPayload struct {
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Source      string            `json:"source"`
	Tags        []string          `json:"tags"`
	CustomField map[string]string `json:"customField,omitempty"`
}

// BuildPayload maps a lead to the webhook shape. Optional fields only go
// into customField when they actually carry a value.
func BuildPayload(lead *entity.Lead) WebhookPayload {
	firstName := lead.FirstName
	lastName := lead.LastName
	if lead.Name != "" && firstName == "" {
		firstName, lastName = SplitName(lead.Name)
	}

	payload := WebhookPayload{
		FirstName: firstName,
		LastName:  lastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Tags:      []string{"website-lead", lead.Source},
	}

	customFields := make(map[string]string)
	if lead.Interest != "" {
		customFields["interest"] = lead.Interest
	}
	if lead.MembershipTier != "" {
		customFields["membership_tier"] = lead.MembershipTier
	}
	if lead.EventType != "" {
		customFields["event_type"] = lead.EventType
	}
	if lead.PreferredDate != "" {
		customFields["preferred_date"] = lead.PreferredDate
	}
	if lead.EstimatedGuests != "" {
		customFields["estimated_guests"] = lead.EstimatedGuests
	}
	if lead.Subject != "" {
		customFields["subject"] = lead.Subject
	}
	if lead.Message != "" {
		customFields["message"] = lead.Message
	}

	if len(customFields) > 0 {
		payload.CustomField = customFields
	}

	return payload
}

// SplitName breaks a combined name on the first whitespace run.
// "Jane Doe" -> ("Jane", "Doe"), "Madonna" -> ("Madonna", "").
func SplitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

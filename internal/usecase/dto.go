package usecase

import (
	"bytes"
	"encoding/json"
)

type CaptureLeadInput struct {
	// Source is set by the handler from the route, never trusted from the body.
	Source string `json:"-"`

	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Interest        string         `json:"interest"`
	MembershipTier  string         `json:"membership_tier"`
	EventType       string         `json:"event_type"`
	PreferredDate   string         `json:"preferred_date"`
	EstimatedGuests StringOrNumber `json:"estimated_guests"`
	Subject         string         `json:"subject"`
	Message         string         `json:"message"`
}

type CaptureLeadOutput struct {
	LeadID string `json:"lead_id"`
}

// StringOrNumber accepts both "12" and 12 from the browser and keeps
// the value as a string.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = StringOrNumber(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = StringOrNumber(n.String())
	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}

package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCaptureLeadInput rechecks what the forms already enforce
// client-side. Email is required everywhere; the rest depends on the source.
func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if !entity.IsValidSource(input.Source) {
		errors = append(errors, ValidationError{"source", "is unknown"})
		return errors
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	switch input.Source {
	case entity.SourceEventInquiry:
		if strings.TrimSpace(input.Name) == "" {
			errors = append(errors, ValidationError{"name", "is required"})
		}
		if strings.TrimSpace(input.EventType) == "" {
			errors = append(errors, ValidationError{"event_type", "is required"})
		}

	case entity.SourceWineClubSignup:
		if strings.TrimSpace(input.FirstName) == "" {
			errors = append(errors, ValidationError{"first_name", "is required"})
		}
		if strings.TrimSpace(input.LastName) == "" {
			errors = append(errors, ValidationError{"last_name", "is required"})
		}
		if strings.TrimSpace(input.MembershipTier) == "" {
			errors = append(errors, ValidationError{"membership_tier", "is required"})
		}

	case entity.SourceContactMessage:
		if strings.TrimSpace(input.Name) == "" {
			errors = append(errors, ValidationError{"name", "is required"})
		}
	}

	return errors
}

package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
)

type CaptureLeadUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	Forwarder    CRMForwarderInterface
	EmailService EmailServiceInterface
}

func NewCaptureLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	forwarder CRMForwarderInterface,
	emailService EmailServiceInterface,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		LeadRepo:     leadRepo,
		Forwarder:    forwarder,
		EmailService: emailService,
	}
}

// Execute validates and persists one form submission. The CRM forward (and
// the staff email for event inquiries) runs detached after the insert; its
// outcome is logged and never changes what the submitter sees.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	lead := &entity.Lead{
		ID:              uuid.New().String(),
		Source:          input.Source,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Interest:        input.Interest,
		MembershipTier:  input.MembershipTier,
		EventType:       input.EventType,
		PreferredDate:   input.PreferredDate,
		EstimatedGuests: input.EstimatedGuests.String(),
		Subject:         input.Subject,
		Message:         input.Message,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	uc.dispatchAfterCapture(lead)

	return &CaptureLeadOutput{LeadID: lead.ID}, nil
}

// dispatchAfterCapture fires the best-effort side effects. The goroutine
// gets its own context; the HTTP response does not wait for it.
func (uc *CaptureLeadUseCase) dispatchAfterCapture(lead *entity.Lead) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if uc.Forwarder != nil {
			result := uc.Forwarder.ForwardLead(ctx, lead)
			if !result.Delivered() {
				log.Printf("⚠️ CRM forward failed for lead %s: outcome=%s status=%d err=%v",
					lead.ID, result.Outcome, result.Status, result.Err)
			}
		}

		if uc.EmailService != nil && lead.Source == entity.SourceEventInquiry {
			if err := uc.EmailService.SendEventInquiryNotice(lead); err != nil {
				log.Printf("⚠️ Event inquiry notice failed for lead %s: %v", lead.ID, err)
			}
		}
	}()
}

package usecase

import (
	"context"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/integration/ghl"
)

// CRMForwarderInterface relays a persisted lead to the marketing CRM.
// It never returns a Go error: delivery is best-effort and the Result
// carries the soft outcome.
type CRMForwarderInterface interface {
	ForwardLead(ctx context.Context, lead *entity.Lead) ghl.Result
}

// EmailServiceInterface notifies the tasting room about new event
// inquiries. Best-effort, same rules as CRM forwarding.
type EmailServiceInterface interface {
	SendEventInquiryNotice(lead *entity.Lead) error
}

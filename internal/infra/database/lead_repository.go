package database

import (
	"context"
	"database/sql"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts one lead row. No upsert: the same form submitted twice is
// two independent leads.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, source, first_name, last_name, name, email, phone,
			interest, membership_tier, event_type, preferred_date,
			estimated_guests, subject, message, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.Source,
		nullString(lead.FirstName),
		nullString(lead.LastName),
		nullString(lead.Name),
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Interest),
		nullString(lead.MembershipTier),
		nullString(lead.EventType),
		nullString(lead.PreferredDate),
		nullString(lead.EstimatedGuests),
		nullString(lead.Subject),
		nullString(lead.Message),
		lead.CreatedAt,
	)

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

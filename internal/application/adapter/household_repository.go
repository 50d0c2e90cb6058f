// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// HouseholdRepository defines the interface for household profile persistence.
// Writes are upserts with most-recent-writer-wins semantics; there is no
// transactional guarantee across concurrent savers.
type HouseholdRepository interface {
	// FindByID retrieves a household profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HouseholdProfile, error)

	// Save creates or fully replaces a household profile.
	Save(ctx context.Context, profile *entity.HouseholdProfile) error

	// Delete removes a household profile.
	Delete(ctx context.Context, id uuid.UUID) error
}

package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// SnapshotCache is a TTL-bounded read-through cache for household profiles.
// A miss is reported by returning (nil, nil); cache failures are surfaced as
// errors so the caller can fall back to the repository.
type SnapshotCache interface {
	// Get returns the cached profile for the household, or nil on a miss.
	Get(ctx context.Context, householdID uuid.UUID) (*entity.HouseholdProfile, error)

	// Set stores the profile with the given TTL.
	Set(ctx context.Context, profile *entity.HouseholdProfile, ttl time.Duration) error

	// Invalidate drops the cached profile for the household.
	Invalidate(ctx context.Context, householdID uuid.UUID) error
}

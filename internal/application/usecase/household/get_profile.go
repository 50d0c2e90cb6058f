// Package household contains household profile use cases.
package household

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// defaultCacheTTL bounds how stale a cached profile may be. Reads are
// read-through; a concurrent writer simply wins on the next expiry.
const defaultCacheTTL = 5 * time.Minute

// GetProfileInput represents the input for a profile lookup.
type GetProfileInput struct {
	HouseholdID uuid.UUID
}

// GetProfileOutput represents the output of a profile lookup.
type GetProfileOutput struct {
	Profile *entity.HouseholdProfile
}

// GetProfileUseCase retrieves a household profile through the snapshot cache.
type GetProfileUseCase struct {
	repo     adapter.HouseholdRepository
	cache    adapter.SnapshotCache
	cacheTTL time.Duration
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
// A non-positive cacheTTL falls back to the default.
func NewGetProfileUseCase(repo adapter.HouseholdRepository, cache adapter.SnapshotCache, cacheTTL time.Duration) *GetProfileUseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &GetProfileUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute performs the lookup. Cache failures degrade to repository reads.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, input.HouseholdID)
		if err != nil {
			slog.Warn("Snapshot cache read failed, falling back to repository",
				"household_id", input.HouseholdID,
				"error", err,
			)
		} else if cached != nil {
			return &GetProfileOutput{Profile: cached}, nil
		}
	}

	profile, err := uc.repo.FindByID(ctx, input.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load household profile: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, profile, uc.cacheTTL); err != nil {
			slog.Warn("Snapshot cache write failed",
				"household_id", input.HouseholdID,
				"error", err,
			)
		}
	}

	return &GetProfileOutput{Profile: profile}, nil
}

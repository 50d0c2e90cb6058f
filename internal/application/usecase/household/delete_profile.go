package household

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/adapter"
)

// DeleteProfileInput represents the input for a profile deletion.
type DeleteProfileInput struct {
	HouseholdID uuid.UUID
}

// DeleteProfileUseCase removes a household profile and its cached snapshot.
type DeleteProfileUseCase struct {
	repo  adapter.HouseholdRepository
	cache adapter.SnapshotCache
}

// NewDeleteProfileUseCase creates a new DeleteProfileUseCase instance.
func NewDeleteProfileUseCase(repo adapter.HouseholdRepository, cache adapter.SnapshotCache) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Execute deletes the profile, then invalidates the cached snapshot so a
// stale copy cannot be served after removal.
func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {
	if err := uc.repo.Delete(ctx, input.HouseholdID); err != nil {
		return fmt.Errorf("failed to delete household profile: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.HouseholdID); err != nil {
			slog.Warn("Snapshot cache invalidation failed",
				"household_id", input.HouseholdID,
				"error", err,
			)
		}
	}

	return nil
}

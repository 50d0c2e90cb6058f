package household

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// SaveProfileInput represents the input for a profile save.
type SaveProfileInput struct {
	Profile *entity.HouseholdProfile
}

// SaveProfileOutput represents the output of a profile save.
type SaveProfileOutput struct {
	Profile *entity.HouseholdProfile
}

// SaveProfileUseCase upserts a household profile. Most recent writer wins;
// there is no transactional guarantee across concurrent savers.
type SaveProfileUseCase struct {
	repo  adapter.HouseholdRepository
	cache adapter.SnapshotCache
}

// NewSaveProfileUseCase creates a new SaveProfileUseCase instance.
func NewSaveProfileUseCase(repo adapter.HouseholdRepository, cache adapter.SnapshotCache) *SaveProfileUseCase {
	return &SaveProfileUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Execute validates and saves the profile, then invalidates the cached snapshot.
func (uc *SaveProfileUseCase) Execute(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	profile := input.Profile
	if profile == nil || profile.Name == "" || profile.MonthlyIncome < 0 {
		return nil, domainerror.ErrInvalidProfile
	}
	for _, d := range profile.Debts {
		if d.Balance < 0 || d.InterestRate < 0 || d.MinimumPayment < 0 {
			return nil, domainerror.ErrInvalidProfile
		}
	}

	profile.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save household profile: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, profile.ID); err != nil {
			slog.Warn("Snapshot cache invalidation failed",
				"household_id", profile.ID,
				"error", err,
			)
		}
	}

	return &SaveProfileOutput{Profile: profile}, nil
}

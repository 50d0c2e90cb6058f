package household

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

type fakeHouseholdRepo struct {
	profiles    map[uuid.UUID]*entity.HouseholdProfile
	findCalls   int
	saveCalls   int
	deleteCalls int
	findErr     error
	saveErr     error
	deleteErr   error
}

func newFakeHouseholdRepo() *fakeHouseholdRepo {
	return &fakeHouseholdRepo{profiles: make(map[uuid.UUID]*entity.HouseholdProfile)}
}

func (r *fakeHouseholdRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.HouseholdProfile, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	profile, ok := r.profiles[id]
	if !ok {
		return nil, domainerror.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeHouseholdRepo) Save(_ context.Context, profile *entity.HouseholdProfile) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeHouseholdRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.profiles[id]; !ok {
		return domainerror.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

type fakeSnapshotCache struct {
	entries         map[uuid.UUID]*entity.HouseholdProfile
	lastTTL         time.Duration
	getErr          error
	setErr          error
	invalidateErr   error
	invalidateCalls int
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{entries: make(map[uuid.UUID]*entity.HouseholdProfile)}
}

func (c *fakeSnapshotCache) Get(_ context.Context, householdID uuid.UUID) (*entity.HouseholdProfile, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[householdID], nil
}

func (c *fakeSnapshotCache) Set(_ context.Context, profile *entity.HouseholdProfile, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[profile.ID] = profile
	c.lastTTL = ttl
	return nil
}

func (c *fakeSnapshotCache) Invalidate(_ context.Context, householdID uuid.UUID) error {
	c.invalidateCalls++
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	delete(c.entries, householdID)
	return nil
}

func storedProfile() *entity.HouseholdProfile {
	profile := entity.NewHouseholdProfile("Nguyen Household", 7200)
	profile.CashBalance = 15000
	profile.Debts = []entity.Debt{
		{Name: "Visa", Balance: 4200, InterestRate: 21.5, MinimumPayment: 90},
	}
	return profile
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		profile := storedProfile()
		repo := newFakeHouseholdRepo()
		cache := newFakeSnapshotCache()
		cache.entries[profile.ID] = profile

		uc := NewGetProfileUseCase(repo, cache, 0)
		output, err := uc.Execute(ctx, GetProfileInput{HouseholdID: profile.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Profile != profile {
			t.Error("expected cached profile to be returned")
		}
		if repo.findCalls != 0 {
			t.Errorf("expected no repository reads on a cache hit, got %d", repo.findCalls)
		}
	})

	t.Run("cache miss reads repository and populates cache", func(t *testing.T) {
		profile := storedProfile()
		repo := newFakeHouseholdRepo()
		repo.profiles[profile.ID] = profile
		cache := newFakeSnapshotCache()

		uc := NewGetProfileUseCase(repo, cache, 10*time.Minute)
		output, err := uc.Execute(ctx, GetProfileInput{HouseholdID: profile.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Profile != profile {
			t.Error("expected profile from repository")
		}
		if cache.entries[profile.ID] != profile {
			t.Error("expected profile to be written back to the cache")
		}
		if cache.lastTTL != 10*time.Minute {
			t.Errorf("expected configured TTL 10m, got %v", cache.lastTTL)
		}
	})

	t.Run("zero TTL falls back to default", func(t *testing.T) {
		profile := storedProfile()
		repo := newFakeHouseholdRepo()
		repo.profiles[profile.ID] = profile
		cache := newFakeSnapshotCache()

		uc := NewGetProfileUseCase(repo, cache, 0)
		if _, err := uc.Execute(ctx, GetProfileInput{HouseholdID: profile.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.lastTTL != defaultCacheTTL {
			t.Errorf("expected default TTL %v, got %v", defaultCacheTTL, cache.lastTTL)
		}
	})

	t.Run("cache read failure degrades to repository", func(t *testing.T) {
		profile := storedProfile()
		repo := newFakeHouseholdRepo()
		repo.profiles[profile.ID] = profile
		cache := newFakeSnapshotCache()
		cache.getErr = errors.New("connection refused")

		uc := NewGetProfileUseCase(repo, cache, 0)
		output, err := uc.Execute(ctx, GetProfileInput{HouseholdID: profile.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Profile != profile {
			t.Error("expected profile from repository despite cache failure")
		}
		if repo.findCalls != 1 {
			t.Errorf("expected one repository read, got %d", repo.findCalls)
		}
	})

	t.Run("cache write failure does not fail the lookup", func(t *testing.T) {
		profile := storedProfile()
		repo := newFakeHouseholdRepo()
		repo.profiles[profile.ID] = profile
		cache := newFakeSnapshotCache()
		cache.setErr = errors.New("write timeout")

		uc := NewGetProfileUseCase(repo, cache, 0)
		output, err := uc.Execute(ctx, GetProfileInput{HouseholdID: profile.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Profile != profile {
			t.Error("expected profile from repository")
		}
	})

	t.Run("nil cache reads straight from repository", func(t *testing.T) {
		profile := storedProfile()
		repo := newFakeHouseholdRepo()
		repo.profiles[profile.ID] = profile

		uc := NewGetProfileUseCase(repo, nil, 0)
		output, err := uc.Execute(ctx, GetProfileInput{HouseholdID: profile.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Profile != profile {
			t.Error("expected profile from repository")
		}
	})

	t.Run("missing profile propagates not found", func(t *testing.T) {
		repo := newFakeHouseholdRepo()
		uc := NewGetProfileUseCase(repo, newFakeSnapshotCache(), 0)

		_, err := uc.Execute(ctx, GetProfileInput{HouseholdID: uuid.New()})
		if !errors.Is(err, domainerror.ErrProfileNotFound) {
			t.Errorf("expected ErrProfileNotFound, got %v", err)
		}
	})
}

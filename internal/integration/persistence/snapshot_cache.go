package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// snapshotCacheKeyPrefix namespaces profile entries in Redis.
const snapshotCacheKeyPrefix = "advisor:profile:"

// snapshotCache implements the adapter.SnapshotCache interface on Redis.
type snapshotCache struct {
	client *redis.Client
}

// NewSnapshotCache creates a new Redis-backed snapshot cache.
func NewSnapshotCache(client *redis.Client) adapter.SnapshotCache {
	return &snapshotCache{
		client: client,
	}
}

// Get returns the cached profile for the household, or nil on a miss.
func (c *snapshotCache) Get(ctx context.Context, householdID uuid.UUID) (*entity.HouseholdProfile, error) {
	payload, err := c.client.Get(ctx, cacheKey(householdID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	var profile entity.HouseholdProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return &profile, nil
}

// Set stores the profile with the given TTL.
func (c *snapshotCache) Set(ctx context.Context, profile *entity.HouseholdProfile, ttl time.Duration) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile for cache: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(profile.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached profile for the household.
func (c *snapshotCache) Invalidate(ctx context.Context, householdID uuid.UUID) error {
	if err := c.client.Del(ctx, cacheKey(householdID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot cache: %w", err)
	}
	return nil
}

func cacheKey(householdID uuid.UUID) string {
	return snapshotCacheKeyPrefix + householdID.String()
}

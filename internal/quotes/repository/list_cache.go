package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renoquote/quote-backend/internal/quotes/domain"
)

const (
	listingKey = "quotes:projects:all" // cached JSON of the full listing
	listingTTL = 5 * time.Minute
)

// ListingCache is a Redis-backed cache of the full project listing.
// It is write-through-invalidated: every project creation drops the key,
// so a cached listing never misses a committed project.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a listing cache over the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing, or ok=false on a miss.
func (c *ListingCache) Get(ctx context.Context) ([]domain.Project, bool, error) {
	data, err := c.client.Get(ctx, listingKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("listing cache get: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		return nil, false, fmt.Errorf("listing cache decode: %w", err)
	}
	return projects, true, nil
}

// Set stores the listing with a TTL.
func (c *ListingCache) Set(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	if err := c.client.Set(ctx, listingKey, data, listingTTL).Err(); err != nil {
		return fmt.Errorf("listing cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing. Called after every create.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("listing cache invalidate: %w", err)
	}
	return nil
}

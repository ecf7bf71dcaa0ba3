package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renoquote/quote-backend/internal/quotes/domain"
)

func setupListingCache(t *testing.T) (*ListingCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewListingCache(client), mr
}

func TestListingCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		cache, _ := setupListingCache(t)

		_, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round-trips a listing", func(t *testing.T) {
		cache, _ := setupListingCache(t)

		url := "https://cdn.example.com/uploads/a.png"
		projects := []domain.Project{
			{ID: 1, UserName: "Ann", ProjectDetails: "Repaint kitchen"},
			{ID: 2, UserName: "Bob", ProjectDetails: "New deck", ImageURL: &url},
		}
		require.NoError(t, cache.Set(ctx, projects))

		got, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Nil(t, got[0].ImageURL)
		require.NotNil(t, got[1].ImageURL)
		assert.Equal(t, url, *got[1].ImageURL)
	})

	t.Run("set applies a ttl", func(t *testing.T) {
		cache, mr := setupListingCache(t)

		require.NoError(t, cache.Set(ctx, []domain.Project{{ID: 1}}))
		assert.Greater(t, mr.TTL(listingKey), time.Duration(0))
	})

	t.Run("invalidate drops the key", func(t *testing.T) {
		cache, mr := setupListingCache(t)

		require.NoError(t, cache.Set(ctx, []domain.Project{{ID: 1}}))
		require.NoError(t, cache.Invalidate(ctx))
		assert.False(t, mr.Exists(listingKey))
	})
}

package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/repository"
)

func setupCache(t *testing.T) *ProductCache {
	cache := NewProductCache()
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestProductCache_SetAndGet(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	product := &entity.Product{ID: "p1", Title: "Desk Lamp", Price: 200}
	require.NoError(t, cache.Set(ctx, "p1", product, time.Minute))

	got, err := cache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", got.Title)

	// The cache hands out copies, not pointers into its own state.
	got.Title = "mutated"
	again, err := cache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", again.Title)
}

func TestProductCache_MissReturnsNotFound(t *testing.T) {
	cache := setupCache(t)

	_, err := cache.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductCache_ExpiredEntryIsAMiss(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	product := &entity.Product{ID: "p1", Title: "Desk Lamp"}
	require.NoError(t, cache.Set(ctx, "p1", product, 10*time.Millisecond))

	time.Sleep(25 * time.Millisecond)

	_, err := cache.Get(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductCache_Delete(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "p1", &entity.Product{ID: "p1"}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "p1"))

	_, err := cache.Get(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

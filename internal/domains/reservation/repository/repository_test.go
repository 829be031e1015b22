package repository_test

import (
	"context"
	"strconv"
	"testing"

	"mahalo/config"
	otelMocks "mahalo/infras/otel/mocks"
	"mahalo/internal/domains/reservation/model"
	"mahalo/internal/domains/reservation/repository"
	"mahalo/shared"
	cacheMocks "mahalo/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDMonotonic(t *testing.T) {
	repo := repository.New(cacheMocks.NewMemoryCache(), &config.Config{}, otelMocks.NewOtel())

	previous := int64(0)
	for i := 0; i < 1000; i++ {
		id, err := strconv.ParseInt(repo.NextID(), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, id, previous)
		previous = id
	}
}

func TestReservationRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Mirror.Enable = true
	cache := cacheMocks.NewMemoryCache()
	repo := repository.New(cache, cfg, otelMocks.NewOtel())

	id := repo.NextID()
	require.NoError(t, repo.Insert(ctx, model.Reservation{ID: id, Type: "room", Email: "kai@example.com"}))

	stored, ok := repo.Get(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "kai@example.com", stored.Email)
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, repo.Delete(ctx, id))
	assert.Equal(t, 0, cache.Len())
}

func TestMirrorWipe(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Mirror.Enable = true
	cache := cacheMocks.NewMemoryCache()

	repo := repository.New(cache, cfg, otelMocks.NewOtel())
	require.NoError(t, repo.Insert(ctx, model.Reservation{ID: repo.NextID(), Type: "room", Email: "kai@example.com"}))
	require.NoError(t, repo.Insert(ctx, model.Reservation{ID: repo.NextID(), Type: "event", Email: "lena@example.com"}))
	require.Equal(t, 2, cache.Len())

	shared.InvalidateCaches(ctx, cache, "mirror:reservation")
	assert.Equal(t, 0, cache.Len())

	restored := repository.New(cache, cfg, otelMocks.NewOtel())
	assert.Empty(t, restored.All(ctx))
}

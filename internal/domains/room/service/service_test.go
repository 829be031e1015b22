package service_test

import (
	"context"
	"testing"

	"mahalo/config"
	otelMocks "mahalo/infras/otel/mocks"
	s3Mocks "mahalo/infras/s3/mocks"
	pricingService "mahalo/internal/domains/pricing/service"
	"mahalo/internal/domains/room/model"
	"mahalo/internal/domains/room/service"
	cacheMocks "mahalo/shared/cache/mocks"
	"mahalo/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(s3 *s3Mocks.StaticS3) service.Room {
	cfg := &config.Config{}
	cache := cacheMocks.NewMemoryCache()
	pricing := pricingService.New(cfg, cache, otelMocks.NewOtel())

	return service.New(pricing, cfg, cache, otelMocks.NewOtel(), s3)
}

func TestRoomGetAll(t *testing.T) {
	svc := newService(s3Mocks.NewStaticS3())

	res, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(model.Catalog()), res.Total)
	assert.Equal(t, float64(1800), res.Rooms[0].NightlyRate)
}

func TestRoomGet(t *testing.T) {
	t.Run("returns the room with its gallery", func(t *testing.T) {
		s3 := s3Mocks.NewStaticS3()
		s3.Images["5"] = []string{"https://cdn.example.com/rooms/5/1.jpg"}

		res, err := newService(s3).Get(context.Background(), "5")

		require.NoError(t, err)
		assert.Equal(t, "Beachfront Suite", res.Name)
		assert.Equal(t, 2, res.MaxGuests)
		assert.Len(t, res.Images, 1)
	})

	t.Run("unknown room is a 404", func(t *testing.T) {
		_, err := newService(s3Mocks.NewStaticS3()).Get(context.Background(), "99")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomEffectiveMax(t *testing.T) {
	room := model.Room{BaseCapacity: 2, HardCapacity: 4, BookingCap: 3}

	assert.Equal(t, 3, room.EffectiveMax())
	assert.True(t, room.FitsGuests(3))
	assert.False(t, room.FitsGuests(4))
	assert.False(t, room.FitsGuests(0))
}

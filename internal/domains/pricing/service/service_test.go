package service_test

import (
	"context"
	"testing"

	"mahalo/config"
	otelMocks "mahalo/infras/otel/mocks"
	"mahalo/internal/domains/pricing/model"
	"mahalo/internal/domains/pricing/model/dto"
	"mahalo/internal/domains/pricing/service"
	cacheMocks "mahalo/shared/cache/mocks"
	"mahalo/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(mirror bool) *config.Config {
	cfg := &config.Config{}
	cfg.Mirror.Enable = mirror

	return cfg
}

func TestPricingUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the table wholesale", func(t *testing.T) {
		svc := service.New(newConfig(false), cacheMocks.NewMemoryCache(), otelMocks.NewOtel())

		table := model.DefaultPriceTable()
		table.Rooms["1"] = 2500

		res, err := svc.Update(ctx, dto.UpdatePricesRequest{
			Rooms:      table.Rooms,
			Restaurant: table.Restaurant,
			Events:     table.Events,
		})

		require.NoError(t, err)
		assert.Equal(t, float64(2500), res.Rooms["1"])
		assert.Equal(t, float64(2500), svc.Table(ctx).Rooms["1"])
	})

	t.Run("rejects a table without rates", func(t *testing.T) {
		svc := service.New(newConfig(false), cacheMocks.NewMemoryCache(), otelMocks.NewOtel())

		_, err := svc.Update(ctx, dto.UpdatePricesRequest{})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("mirror outage does not fail the update", func(t *testing.T) {
		cache := cacheMocks.NewMemoryCache()
		cache.FailOps = true
		svc := service.New(newConfig(true), cache, otelMocks.NewOtel())

		table := model.DefaultPriceTable()
		_, err := svc.Update(ctx, dto.UpdatePricesRequest{
			Rooms:      table.Rooms,
			Restaurant: table.Restaurant,
			Events:     table.Events,
		})

		assert.NoError(t, err)
	})
}

func TestPricingRestore(t *testing.T) {
	ctx := context.Background()
	cache := cacheMocks.NewMemoryCache()

	first := service.New(newConfig(true), cache, otelMocks.NewOtel())

	table := model.DefaultPriceTable()
	table.Rooms["6"] = 7500
	_, err := first.Update(ctx, dto.UpdatePricesRequest{
		Rooms:      table.Rooms,
		Restaurant: table.Restaurant,
		Events:     table.Events,
	})
	require.NoError(t, err)

	// A fresh service over the same cache picks up the mirrored table.
	second := service.New(newConfig(true), cache, otelMocks.NewOtel())

	assert.Equal(t, float64(7500), second.Table(ctx).Rooms["6"])
}

func TestPricingDefaultsWhenMirrorEmpty(t *testing.T) {
	svc := service.New(newConfig(true), cacheMocks.NewMemoryCache(), otelMocks.NewOtel())

	assert.Equal(t, model.DefaultPriceTable().Rooms, svc.Table(context.Background()).Rooms)
}

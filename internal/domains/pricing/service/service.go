package service

import (
	"context"
	"sync"

	"mahalo/config"
	"mahalo/infras/otel"
	"mahalo/internal/domains/pricing/model"
	"mahalo/internal/domains/pricing/model/dto"
	"mahalo/shared/cache"
	"mahalo/shared/constant"
	"mahalo/shared/failure"

	"github.com/rs/zerolog/log"
)

const mirrorKeyPrices = "mirror:price_table"

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/service_mock.go -package=service_mocks

// Pricing owns the in-memory rate table and keeps a best-effort mirror of it
// in Redis so admin edits survive restarts.
type Pricing interface {
	Get(ctx context.Context) dto.PricesResponse
	Update(ctx context.Context, req dto.UpdatePricesRequest) (dto.PricesResponse, error)
	Table(ctx context.Context) model.PriceTable
}

type serviceImpl struct {
	mu    sync.RWMutex
	table model.PriceTable
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

// New seeds the default table, then lets a mirrored copy from a previous run
// override it when one exists.
func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	s := &serviceImpl{
		table: model.DefaultPriceTable(),
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}

	s.restore(context.Background())

	return s
}

func (s *serviceImpl) restore(ctx context.Context) {
	if !s.cfg.Mirror.Enable {
		return
	}

	var table model.PriceTable
	if err := s.cache.Get(ctx, mirrorKeyPrices, &table); err != nil {
		return
	}

	if len(table.Rooms) == 0 {
		log.Warn().Msg("mirrored price table is empty, keeping defaults")

		return
	}

	s.table = table
}

// Table returns the live rate table for other services to quote against.
func (s *serviceImpl) Table(ctx context.Context) model.PriceTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.table
}

func (s *serviceImpl) Get(ctx context.Context) dto.PricesResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPrices")
	defer scope.End()

	return dto.PricesResponse{}.FromModel(s.Table(ctx))
}

// Update replaces the table wholesale. Last write wins; the mirror write is
// best effort and never fails the request.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePricesRequest) (res dto.PricesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	table := req.ToModel()

	if len(table.Rooms) == 0 ||
		len(table.Events.Decorated.Brackets) == 0 ||
		len(table.Events.Undecorated.Brackets) == 0 {
		err = failure.BadRequestFromString("price table is missing room rates or event brackets")

		return
	}

	s.mu.Lock()
	s.table = table
	s.mu.Unlock()

	if s.cfg.Mirror.Enable {
		if cacheErr := s.cache.Save(ctx, mirrorKeyPrices, table, 0); cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to mirror price table")
		}
	}

	return dto.PricesResponse{}.FromModel(table), nil
}

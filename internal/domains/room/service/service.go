package service

import (
	"context"
	"fmt"

	"mahalo/config"
	"mahalo/infras/otel"
	"mahalo/infras/s3"
	pricing "mahalo/internal/domains/pricing/service"
	"mahalo/internal/domains/room/model"
	"mahalo/internal/domains/room/model/dto"
	"mahalo/shared"
	"mahalo/shared/cache"
	"mahalo/shared/constant"
	"mahalo/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheRoomImages = "room:images"

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/service_mock.go -package=service_mocks

// Room serves the fixed catalog, enriched with live nightly rates and the
// image sets stored per room in object storage.
type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Find(id string) (model.Room, bool)
}

type serviceImpl struct {
	pricing pricing.Pricing
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	s3      s3.S3
}

func New(pricing pricing.Pricing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		pricing: pricing,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		s3:      s3,
	}
}

// Find looks the room up in the catalog without touching storage. Inactive
// rooms are invisible to bookings.
func (s *serviceImpl) Find(id string) (model.Room, bool) {
	for _, room := range model.Catalog() {
		if room.ID == id && room.Active {
			return room, true
		}
	}

	return model.Room{}, false
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	table := s.pricing.Table(ctx)

	for _, room := range model.Catalog() {
		if !room.Active {
			continue
		}

		res.Rooms = append(res.Rooms, dto.RoomResponse{}.FromModel(room, table.Rooms[room.ID], nil))
	}

	res.Total = len(res.Rooms)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, ok := s.Find(id)
	if !ok {
		err = failure.NotFound(model.EntityName)

		return
	}

	images, err := s.images(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("roomID", id).Msg("failed to list room images")

		return res, fmt.Errorf("failed to list room images: %w", err)
	}

	return dto.RoomResponse{}.FromModel(room, s.pricing.Table(ctx).Rooms[room.ID], images), nil
}

// images serves the S3 listing through the cache since the gallery changes
// rarely and the listing call is the slowest part of the room detail page.
func (s *serviceImpl) images(ctx context.Context, id string) (images []string, err error) {
	cacheKey := shared.BuildCacheKey(cacheRoomImages, id)

	if err = s.cache.Get(ctx, cacheKey, &images); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room images")

		return images, nil
	}

	images, err = s.s3.ListRoomImages(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, images, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room images to cache")
		}
	}()

	return images, nil
}

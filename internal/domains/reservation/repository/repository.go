package repository

import (
	"context"
	"strconv"
	"sync"

	"mahalo/config"
	"mahalo/infras/otel"
	"mahalo/internal/domains/reservation/model"
	"mahalo/shared/cache"
	"mahalo/shared/dto"
	"mahalo/shared/repository"
	"mahalo/shared/timezone"
)

const mirrorPrefix = "mirror:reservation:"

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/repository_mock.go -package=repository_mocks

// Reservation is the booking store. Memory is authoritative for writes and
// the Redis mirror follows best-effort; identifiers are timestamp-derived so
// key order tracks insertion order.
type Reservation interface {
	Insert(ctx context.Context, reservation model.Reservation) error
	Update(ctx context.Context, reservation model.Reservation) error
	Get(ctx context.Context, id string) (model.Reservation, bool)
	Delete(ctx context.Context, id string) error
	Exist(ctx context.Context, id string) bool
	All(ctx context.Context) []model.Reservation
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]model.Reservation, int)
	Count(ctx context.Context, filter dto.FilterGroup) int
	NextID() string
}

type repositoryImpl struct {
	*repository.Repository[model.Reservation]

	mu     sync.Mutex
	lastID int64
}

func New(mirror cache.RedisCache, cfg *config.Config, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: repository.NewRepository[model.Reservation](model.EntityName, mirrorPrefix, nil, mirror, cfg, otel),
	}
}

// NextID issues a millisecond-timestamp identifier, bumped past the last
// issued value when two bookings land in the same millisecond.
func (r *repositoryImpl) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := timezone.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	return strconv.FormatInt(id, 10)
}

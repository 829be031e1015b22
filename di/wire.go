//go:build wireinject
// +build wireinject

package di

import (
	"mahalo/config"
	"mahalo/infras/jwt"
	"mahalo/infras/kafka"
	"mahalo/infras/otel"
	"mahalo/infras/redis"
	"mahalo/infras/s3"
	"mahalo/permissions"
	"mahalo/shared/cache"
	"mahalo/transport/http"
	"mahalo/transport/http/middleware"
	"mahalo/transport/http/router"

	authService "mahalo/internal/domains/auth/service"
	pricingService "mahalo/internal/domains/pricing/service"
	reservationRepository "mahalo/internal/domains/reservation/repository"
	reservationService "mahalo/internal/domains/reservation/service"
	roomService "mahalo/internal/domains/room/service"

	authHandler "mahalo/internal/handlers/auth"
	pricingHandler "mahalo/internal/handlers/pricing"
	reservationHandler "mahalo/internal/handlers/reservation"
	roomHandler "mahalo/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var roomDomain = wire.NewSet(
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	pricingDomain,
	roomDomain,
	reservationDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	pricingHandler.New,
	reservationHandler.New,
	roomHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

package service

import (
	"context"
	"fmt"
	"strings"

	"mahalo/config"
	"mahalo/infras/jwt"
	"mahalo/infras/otel"
	"mahalo/internal/domains/auth/model/dto"
	"mahalo/shared"
	"mahalo/shared/cache"
	"mahalo/shared/constant"
	"mahalo/shared/failure"
	"mahalo/shared/password"

	"github.com/rs/zerolog/log"
)

const cacheLockout = "auth:lockout"

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/service_mock.go -package=service_mocks

// Auth authenticates the two fixed principals configured at deploy time.
// Failed attempts are counted per email in Redis; past the configured limit
// logins are refused until the window lapses.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	jwt   jwt.JWT
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(jwt jwt.JWT, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Auth {
	return &serviceImpl{
		jwt:   jwt,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// principal resolves an email to its role and stored bcrypt hash.
func (s *serviceImpl) principal(email string) (role, hash string, ok bool) {
	switch strings.ToLower(email) {
	case strings.ToLower(s.cfg.Auth.AdminEmail):
		return constant.RoleAdmin, s.cfg.Auth.AdminPasswordHash, true
	case strings.ToLower(s.cfg.Auth.GuestEmail):
		return constant.RoleGuest, s.cfg.Auth.GuestPasswordHash, true
	default:
		return constant.Empty, constant.Empty, false
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(req.Email)
	lockoutKey := shared.BuildCacheKey(cacheLockout, email)

	var attempts int
	if cacheErr := s.cache.Get(ctx, lockoutKey, &attempts); cacheErr == nil && attempts >= s.cfg.Auth.Lockout.MaxAttempts {
		err = failure.TooManyRequests("too many failed attempts, try again later")

		return
	}

	role, hash, ok := s.principal(email)

	// The same message for unknown emails and wrong passwords keeps account
	// probing blind.
	if !ok || password.Verify(req.Password, hash) != nil {
		attempts++
		if cacheErr := s.cache.Save(ctx, lockoutKey, attempts, s.cfg.Auth.Lockout.WindowSeconds); cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to record login attempt")
		}

		err = failure.Unauthorized("invalid email or password")

		return
	}

	if cacheErr := s.cache.Delete(ctx, lockoutKey); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to clear login attempts")
	}

	pair, err := s.jwt.GenerateTokenPair(role, email, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return dto.LoginResponse{}.FromTokenPair(email, role, pair), nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		err = failure.Unauthorized("invalid refresh token")

		return
	}

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		err = failure.Unauthorized("invalid refresh token")

		return
	}

	return dto.LoginResponse{}.FromTokenPair(claims.Email, claims.Role, pair), nil
}

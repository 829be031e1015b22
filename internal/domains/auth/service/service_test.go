package service_test

import (
	"context"
	"testing"

	"mahalo/config"
	"mahalo/infras/jwt"
	otelMocks "mahalo/infras/otel/mocks"
	"mahalo/internal/domains/auth/model/dto"
	"mahalo/internal/domains/auth/service"
	cacheMocks "mahalo/shared/cache/mocks"
	"mahalo/shared/constant"
	"mahalo/shared/failure"
	"mahalo/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (service.Auth, *config.Config) {
	t.Helper()

	adminHash, err := password.Hash("correct-horse-1")
	require.NoError(t, err)
	guestHash, err := password.Hash("battery-staple-2")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.AdminEmail = "admin@mahalo.club"
	cfg.Auth.AdminPasswordHash = adminHash
	cfg.Auth.GuestEmail = "guest@mahalo.club"
	cfg.Auth.GuestPasswordHash = guestHash
	cfg.Auth.Lockout.MaxAttempts = 3
	cfg.Auth.Lockout.WindowSeconds = 300
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return service.New(jwt.New(cfg), cfg, cacheMocks.NewMemoryCache(), otelMocks.NewOtel()), cfg
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin logs in with the configured credentials", func(t *testing.T) {
		svc, _ := newAuth(t)

		res, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@mahalo.club", Password: "correct-horse-1"})

		require.NoError(t, err)
		assert.Equal(t, constant.RoleAdmin, res.Role)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})

	t.Run("wrong password and unknown email read the same", func(t *testing.T) {
		svc, _ := newAuth(t)

		_, errWrong := svc.Login(ctx, dto.LoginRequest{Email: "admin@mahalo.club", Password: "wrong-password-9"})
		_, errUnknown := svc.Login(ctx, dto.LoginRequest{Email: "who@mahalo.club", Password: "wrong-password-9"})

		require.Error(t, errWrong)
		require.Error(t, errUnknown)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
		assert.Equal(t, 401, failure.GetCode(errWrong))
	})

	t.Run("repeated failures lock the account out", func(t *testing.T) {
		svc, cfg := newAuth(t)

		for i := 0; i < cfg.Auth.Lockout.MaxAttempts; i++ {
			_, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@mahalo.club", Password: "wrong-password-9"})
			assert.Equal(t, 401, failure.GetCode(err))
		}

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@mahalo.club", Password: "correct-horse-1"})
		require.Error(t, err)
		assert.Equal(t, 429, failure.GetCode(err))
	})

	t.Run("a successful login clears the counter", func(t *testing.T) {
		svc, _ := newAuth(t)

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "guest@mahalo.club", Password: "wrong-password-9"})
		require.Error(t, err)

		_, err = svc.Login(ctx, dto.LoginRequest{Email: "guest@mahalo.club", Password: "battery-staple-2"})
		require.NoError(t, err)

		_, err = svc.Login(ctx, dto.LoginRequest{Email: "guest@mahalo.club", Password: "wrong-password-9"})
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuth(t)

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "guest@mahalo.club", Password: "battery-staple-2"})
	require.NoError(t, err)

	t.Run("a valid refresh token mints a new pair", func(t *testing.T) {
		res, err := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})

		require.NoError(t, err)
		assert.Equal(t, constant.RoleGuest, res.Role)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("an access token is not accepted as refresh", func(t *testing.T) {
		_, err := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.AccessToken})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

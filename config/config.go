package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials    bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders      []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods      []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins      []string `envconfig:"ALLOWED_ORIGINS"`
			AllowVercelPreviews bool     `envconfig:"ALLOW_VERCEL_PREVIEWS"`
			Enable              bool     `envconfig:"ENABLE"`
			MaxAgeSeconds       int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Auth struct {
		AdminEmail        string `envconfig:"ADMIN_EMAIL"`
		AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
		GuestEmail        string `envconfig:"GUEST_EMAIL"`
		GuestPasswordHash string `envconfig:"GUEST_PASSWORD_HASH"`
		Lockout           struct {
			MaxAttempts   int `envconfig:"MAX_ATTEMPTS"`
			WindowSeconds int `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"LOCKOUT"`
	} `envconfig:"AUTH"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Mirror struct {
		Enable     bool `envconfig:"ENABLE"`
		MaxRetries int  `envconfig:"MAX_RETRIES"`
	} `envconfig:"MIRROR"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			Region          string `envconfig:"REGION"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicBaseURL   string `envconfig:"PUBLIC_BASE_URL"`
		} `envconfig:"S3"`
		Kafka struct {
			Enable            bool     `envconfig:"ENABLE"`
			Brokers           []string `envconfig:"BROKERS"`
			Username          string   `envconfig:"USERNAME"`
			Password          string   `envconfig:"PASSWORD"`
			NotificationTopic string   `envconfig:"NOTIFICATION_TOPIC"`
		} `envconfig:"KAFKA"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

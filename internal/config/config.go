package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Posting  PostingConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type PostingConfig struct {
	HeadlessEnabled bool
	SeedDemoAccount bool
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optSeconds := func(key string, fallback time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return fallback
		}
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return fallback
		}
		return time.Duration(secs) * time.Second
	}
	optBool := func(key string, fallback bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return fallback
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fallback
		}
		return v
	}
	optInt32 := func(key string, fallback int32) int32 {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return fallback
		}
		return int32(v)
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:      optSeconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:        optInt32("DB_POOL_MAX_CONNS", 10),
		PoolMinConns:        optInt32("DB_POOL_MIN_CONNS", 2),
		PoolMaxConnLifetime: optSeconds("DB_POOL_MAX_CONN_LIFETIME", 30*time.Minute),
		PoolMaxConnIdleTime: optSeconds("DB_POOL_MAX_CONN_IDLE_TIME", 10*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	cfg.Posting = PostingConfig{
		HeadlessEnabled: optBool("POSTING_HEADLESS_ENABLED", false),
		SeedDemoAccount: optBool("SEED_DEMO_ACCOUNT", false),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optSeconds("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optSeconds("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "workmatch")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.AppName != "workmatch" || cfg.App.HTTPPort != "8080" {
		t.Fatalf("app config: %+v", cfg.App)
	}
	if cfg.Database.PoolMaxConns != 10 || cfg.Database.PoolMinConns != 2 {
		t.Fatalf("pool defaults: %+v", cfg.Database)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("redis ttl default: %v", cfg.Redis.TTL)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute || cfg.JWT.RefreshExpiresIn != 7*24*time.Hour {
		t.Fatalf("jwt defaults: %+v", cfg.JWT)
	}
	if cfg.Posting.HeadlessEnabled {
		t.Fatalf("headless should default off")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected an error for missing required vars")
	}
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("wrong error: %v", err)
	}
	if !strings.Contains(err.Error(), "APP_NAME") || !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Fatalf("error should name the missing vars: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_POOL_MAX_CONNS", "25")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "60")
	t.Setenv("POSTING_HEADLESS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.PoolMaxConns != 25 {
		t.Fatalf("pool override: %d", cfg.Database.PoolMaxConns)
	}
	if cfg.JWT.AccessExpiresIn != 60*time.Second {
		t.Fatalf("jwt override: %v", cfg.JWT.AccessExpiresIn)
	}
	if !cfg.Posting.HeadlessEnabled {
		t.Fatalf("headless override not applied")
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("unparseable ttl should fall back, got %v", cfg.Redis.TTL)
	}
}

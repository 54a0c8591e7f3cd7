package handler

import (
	"context"
	"time"

	"workmatch/internal/catalog"
	"workmatch/internal/database"
	"workmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache pinger
}

func NewHealthHandler(db database.DB, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Handle reports liveness plus dependency state. A down cache does not
// fail the check; the service degrades to cache misses.
func (h *HealthHandler) Handle(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	healthy := true
	if h.db == nil {
		dbStatus = "not configured"
		healthy = false
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "unreachable"
		healthy = false
	}

	cacheStatus := "ok"
	if h.cache == nil {
		cacheStatus = "not configured"
	} else if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "unreachable"
	}

	data := map[string]any{
		"database":      dbStatus,
		"cache":         cacheStatus,
		"catalog_size":  len(catalog.All()),
		"category_size": len(catalog.Categories()),
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

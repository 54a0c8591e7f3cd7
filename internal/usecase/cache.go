package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache is what the usecases need from the cache layer. A nil-safe
// implementation that misses on every read is a valid one.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}

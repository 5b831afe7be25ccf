package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values under string keys. List endpoints use it
// to skip repeated reads; a nil Cache means caching is disabled.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

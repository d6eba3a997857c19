// Package cache is the named-entry cache behind promotional views.
// Values are JSON-encoded on the way in and decoded into the caller's
// destination on the way out, so memory and Redis backends behave the same.
package cache

import (
	"context"
	"time"
)

type Store interface {
	// Get decodes the entry into dest and reports whether it was present
	// and unexpired.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

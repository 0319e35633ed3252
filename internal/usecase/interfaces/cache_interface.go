package interfaces

import (
	"context"
	"time"
)

// ICache abstracts the Redis side cache.
//
// Get returns (nil, nil) on a miss so callers can fall through to the
// source of truth without error plumbing.

type ICache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

package cache

import (
	"context"
	"time"
)

// Cache is the batch/result cache used by the offer service. Implementations
// must be safe for concurrent use.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

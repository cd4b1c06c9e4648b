package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache used by repositories. Implementations must
// be safe for concurrent use; a miss is (false, nil), not an error.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

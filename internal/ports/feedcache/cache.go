package feedcache

import (
	"context"
	"time"
)

// RenderFunc produces the body to cache on a miss.
type RenderFunc func() (string, error)

// Cache is a stale-read-tolerant page cache: entries live for a fixed TTL and
// are otherwise only removed by an explicit Clear. Writes elsewhere in the
// system never invalidate it.
type Cache interface {
	// GetOrRender returns the cached body for key, or calls render and stores
	// the result for ttl. The bool reports whether the body came from cache.
	GetOrRender(ctx context.Context, key string, ttl time.Duration, render RenderFunc) (string, bool, error)
	Clear(ctx context.Context) error
}

// Package cache provides artifact caching for the render pipeline.
//
// Rendering and PNG-encoding a diagram dominates pipeline time, while
// specs change rarely relative to how often they are re-rendered, so the
// pipeline caches finished artifacts keyed on the normalized spec content
// plus the export options. Entries are content addressed: a changed spec
// or option produces a new key, so the cache never needs invalidation.
//
// Two implementations ship: FileCache for CLI usage and NullCache for
// --no-cache runs and tests.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was
	// present; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl keeps the entry forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Package cache provides storage for computed constraint solutions.
//
// Solving a large constraint file is deterministic, so the serialized
// solutions can be cached keyed by a content hash of the input system and
// replayed on later runs. Two implementations are provided: a file-based
// cache for CLI usage and a null cache for disabling caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the different value types.
type Keyer interface {
	// SolutionsKey generates a key for cached solutions of a constraint
	// system identified by its content hash. The serialized solutions are
	// independent of how they are later printed, so the content hash is the
	// only input.
	SolutionsKey(systemHash string) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// SolutionsKey generates a key of the form "solutions:<hash>".
func (k *DefaultKeyer) SolutionsKey(systemHash string) string {
	return hashKey("solutions", systemHash)
}

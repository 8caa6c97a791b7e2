// Package cache provides byte-oriented caching for rendered artifacts.
//
// Three backends are available:
//   - file: on-disk storage for CLI usage
//   - redis: Redis-backed storage for shared deployments
//   - null: a no-op backend for disabling caching
//
// Keys are derived from content hashes through [ArtifactKey], so a manifest
// edit naturally invalidates the artifacts rendered from it.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

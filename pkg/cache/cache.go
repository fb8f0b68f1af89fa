// Package cache provides the byte cache used by the pipeline runner: parsed
// models, built trees and rendered artifacts are stored by content-derived
// keys. Backends cover local CLI use (files), serve mode (Redis) and tests
// (null).
package cache

import (
	"context"
	"time"
)

// Stage TTLs. Keys are content-addressed, so entries never go stale; the
// TTLs only bound storage growth.
const (
	TTLModel    = 7 * 24 * time.Hour
	TTLTree     = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends. A miss is reported
// through the bool, not through an error.
type Cache interface {
	// Get retrieves a value. Returns (nil, false, nil) on miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

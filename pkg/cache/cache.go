// Package cache provides a small byte cache for rendered artifacts.
//
// Rendering through Graphviz is the one expensive stage of the pipeline, so
// its output is cached keyed by the DOT source and target format. The
// layered renderers are pure functions over the embedding and are never
// cached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get returns the cached bytes for key and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey derives the cache key for one rendered artifact from the DOT
// source and the output format.
func ArtifactKey(format string, dot []byte) string {
	return format + ":" + Hash(dot)
}

// Hash returns the hex-encoded SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

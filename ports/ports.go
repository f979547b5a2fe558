// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"context"
	"time"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// Hasher hashes and verifies secrets (admin tokens).
type Hasher interface {
	// Hash generates a hash from plaintext.
	Hash(plaintext string) ([]byte, error)
	// Compare checks if plaintext matches hash.
	Compare(hash []byte, plaintext string) bool
}

// -----------------------------------------------------------------------------
// Storage Ports
// -----------------------------------------------------------------------------

// KVStore is the durable key-value storage the registry context uses to
// seed and save service definition overrides. The engine treats values as
// opaque bytes; storage never participates in a running process's reads,
// which are served from memory.
type KVStore interface {
	// Get retrieves the value for a key. A missing key returns
	// (nil, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under a key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// List returns all key/value pairs whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Close releases the underlying resources.
	Close() error
}

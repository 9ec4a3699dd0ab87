// Package cache memoizes audit fetches and status checks so repeated runs
// against the same production site stay cheap and polite. Memory-only by
// default; a disk layer can be added for persistence between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a URL. The version segment invalidates old
// entries when the cached value format changes.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "casetender:v1:" + hex.EncodeToString(hash[:])
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a stable cache key from an arbitrary identifier (URL,
// request fingerprint)
func Key(id string) string {
	hash := sha256.Sum256([]byte(id))
	return "textdigest:v1:" + hex.EncodeToString(hash[:])
}

// Noop is a cache that stores nothing, used when caching is disabled
type Noop struct{}

// Get always misses
func (Noop) Get(string) ([]byte, bool) { return nil, false }

// Set discards the value
func (Noop) Set(string, []byte, time.Duration) error { return nil }

// Delete does nothing
func (Noop) Delete(string) error { return nil }

// Clear does nothing
func (Noop) Clear() error { return nil }

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get and TTL when the key is absent or expired.
var ErrNotFound = errors.New("key not found")

// KV is a keyed store with per-entry expiry. It backs the login-attempt
// counters, lockout markers and the transient booking flow state. Increment
// must be atomic with respect to concurrent calls on the same key; different
// keys are independent.
type KV interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Increment atomically adds one to the counter under key and pushes its
	// expiry out to ttl from now (sliding window). Returns the new count.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// TTL reports the remaining lifetime of key.
	TTL(ctx context.Context, key string) (time.Duration, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

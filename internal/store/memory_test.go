package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryKV_ExpiryIsLazy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kv := NewMemoryKVWithClock(func() time.Time { return now })
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, "k", "v", time.Minute))

	v, err := kv.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", v)

	now = now.Add(time.Minute + time.Second)

	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryKV_IncrementCountsAndResetsTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kv := NewMemoryKVWithClock(func() time.Time { return now })
	ctx := context.Background()

	n, err := kv.Increment(ctx, "cnt", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	now = now.Add(50 * time.Second)
	n, err = kv.Increment(ctx, "cnt", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// The second increment pushed expiry out; 50s later the counter is
	// still alive.
	now = now.Add(50 * time.Second)
	ttl, err := kv.TTL(ctx, "cnt")
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Second, ttl)
}

func TestMemoryKV_IncrementRestartsAfterExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kv := NewMemoryKVWithClock(func() time.Time { return now })
	ctx := context.Background()

	kv.Increment(ctx, "cnt", time.Minute)
	kv.Increment(ctx, "cnt", time.Minute)

	now = now.Add(2 * time.Minute)

	n, err := kv.Increment(ctx, "cnt", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryKV_TTLMissingKey(t *testing.T) {
	kv := NewMemoryKV()

	_, err := kv.TTL(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

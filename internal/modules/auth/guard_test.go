package auth

import (
	"context"
	"testing"
	"time"

	"flyease/internal/store"

	"github.com/stretchr/testify/assert"
)

func testGuard() (*LoginGuard, *time.Time) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kv := store.NewMemoryKVWithClock(func() time.Time { return now })
	guard := NewLoginGuard(kv, GuardConfig{
		FailWindow:    10 * time.Minute,
		ShortLock:     30 * time.Second,
		LongLock:      5 * time.Minute,
		LockThreshold: 3,
	})
	return guard, &now
}

func TestGuard_FirstTwoFailuresOnlyWarn(t *testing.T) {
	guard, _ := testGuard()
	ctx := context.Background()

	status, err := guard.RecordFailure(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, status.Locked)
	assert.Equal(t, 2, status.AttemptsLeft)

	status, err = guard.RecordFailure(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, status.Locked)
	assert.Equal(t, 1, status.AttemptsLeft)

	locked, _, err := guard.Check(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, locked)
}

func TestGuard_ThirdFailureLocksShort(t *testing.T) {
	guard, _ := testGuard()
	ctx := context.Background()

	guard.RecordFailure(ctx, "user@example.com")
	guard.RecordFailure(ctx, "user@example.com")
	status, err := guard.RecordFailure(ctx, "user@example.com")

	assert.NoError(t, err)
	assert.True(t, status.Locked)
	assert.Equal(t, 30*time.Second, status.Remaining)

	locked, remaining, err := guard.Check(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 30*time.Second, remaining)
}

func TestGuard_FourthFailureAfterLockExpiryLocksLong(t *testing.T) {
	guard, now := testGuard()
	ctx := context.Background()

	guard.RecordFailure(ctx, "user@example.com")
	guard.RecordFailure(ctx, "user@example.com")
	guard.RecordFailure(ctx, "user@example.com")

	// Short lock elapses, fail counter (10m window) is still alive.
	*now = now.Add(31 * time.Second)

	locked, _, err := guard.Check(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, locked)

	status, err := guard.RecordFailure(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.True(t, status.Locked)
	assert.Equal(t, 5*time.Minute, status.Remaining)
}

func TestGuard_CounterExpiresAfterWindow(t *testing.T) {
	guard, now := testGuard()
	ctx := context.Background()

	guard.RecordFailure(ctx, "user@example.com")
	guard.RecordFailure(ctx, "user@example.com")

	*now = now.Add(10*time.Minute + time.Second)

	status, err := guard.RecordFailure(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, status.Locked)
	assert.Equal(t, 2, status.AttemptsLeft)
}

func TestGuard_EachFailureSlidesTheWindow(t *testing.T) {
	guard, now := testGuard()
	ctx := context.Background()

	guard.RecordFailure(ctx, "user@example.com")
	*now = now.Add(9 * time.Minute)
	guard.RecordFailure(ctx, "user@example.com")
	// 9 more minutes: the first failure alone would have expired, but the
	// second failure pushed the whole counter out.
	*now = now.Add(9 * time.Minute)

	status, err := guard.RecordFailure(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.True(t, status.Locked)
	assert.Equal(t, 30*time.Second, status.Remaining)
}

func TestGuard_ClearResetsEverything(t *testing.T) {
	guard, _ := testGuard()
	ctx := context.Background()

	guard.RecordFailure(ctx, "user@example.com")
	guard.RecordFailure(ctx, "user@example.com")
	guard.RecordFailure(ctx, "user@example.com")

	assert.NoError(t, guard.Clear(ctx, "user@example.com"))

	locked, _, err := guard.Check(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, locked)

	status, err := guard.RecordFailure(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.False(t, status.Locked)
	assert.Equal(t, 2, status.AttemptsLeft)
}

func TestGuard_IdentifiersAreIndependent(t *testing.T) {
	guard, _ := testGuard()
	ctx := context.Background()

	guard.RecordFailure(ctx, "a@example.com")
	guard.RecordFailure(ctx, "a@example.com")
	guard.RecordFailure(ctx, "a@example.com")

	locked, _, _ := guard.Check(ctx, "a@example.com")
	assert.True(t, locked)

	locked, _, _ = guard.Check(ctx, "b@example.com")
	assert.False(t, locked)

	// Identifier is taken as supplied, so a different casing is a
	// different key.
	locked, _, _ = guard.Check(ctx, "A@example.com")
	assert.False(t, locked)
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "30 seconds", FormatRemaining(30*time.Second))
	assert.Equal(t, "5 minutes", FormatRemaining(5*time.Minute))
	assert.Equal(t, "3 minutes", FormatRemaining(2*time.Minute+10*time.Second))
	assert.Equal(t, "1 minute", FormatRemaining(time.Minute))
}

package auth

import (
	"context"
	"errors"
	"time"

	"flyease/internal/store"
)

// GuardConfig holds the throttling knobs. Thresholds follow the escalation
// ladder: failures below the threshold only warn, the threshold-th failure
// locks for ShortLock, any later failure locks for LongLock.
type GuardConfig struct {
	FailWindow    time.Duration
	ShortLock     time.Duration
	LongLock      time.Duration
	LockThreshold int
}

// GuardStatus is the guard's verdict after recording a failure.
type GuardStatus struct {
	Locked       bool
	Remaining    time.Duration
	AttemptsLeft int
}

// LoginGuard tracks failed login attempts per account identifier and
// enforces escalating lockout windows. It is advisory throttling, not
// authentication: once a lock window has elapsed a correct password goes
// through. Keys use the identifier exactly as supplied.
//
// State lives in the fast-expiry store: a fail counter under a sliding
// FailWindow TTL and a lock marker whose TTL is the lock itself. The store's
// atomic increment keeps concurrent failures on the same identifier from
// under-counting; expiry is evaluated lazily at the next access.
type LoginGuard struct {
	kv  store.KV
	cfg GuardConfig
}

func NewLoginGuard(kv store.KV, cfg GuardConfig) *LoginGuard {
	return &LoginGuard{kv: kv, cfg: cfg}
}

// Check reports whether the identifier is currently locked and for how much
// longer. Called before any password verification.
func (g *LoginGuard) Check(ctx context.Context, identifier string) (bool, time.Duration, error) {
	remaining, err := g.kv.TTL(ctx, lockKey(identifier))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, remaining, nil
}

// RecordFailure counts one failed verification and decides the consequence.
// Each failure pushes the counter expiry out to FailWindow again.
func (g *LoginGuard) RecordFailure(ctx context.Context, identifier string) (GuardStatus, error) {
	count, err := g.kv.Increment(ctx, failKey(identifier), g.cfg.FailWindow)
	if err != nil {
		return GuardStatus{}, err
	}

	if count < int64(g.cfg.LockThreshold) {
		return GuardStatus{AttemptsLeft: g.cfg.LockThreshold - int(count)}, nil
	}

	lockFor := g.cfg.ShortLock
	if count > int64(g.cfg.LockThreshold) {
		lockFor = g.cfg.LongLock
	}
	if err := g.kv.Set(ctx, lockKey(identifier), "1", lockFor); err != nil {
		return GuardStatus{}, err
	}
	return GuardStatus{Locked: true, Remaining: lockFor}, nil
}

// Clear wipes both the counter and any lock marker after a successful
// verification.
func (g *LoginGuard) Clear(ctx context.Context, identifier string) error {
	if err := g.kv.Delete(ctx, failKey(identifier)); err != nil {
		return err
	}
	return g.kv.Delete(ctx, lockKey(identifier))
}

func failKey(identifier string) string { return "login:fail:" + identifier }
func lockKey(identifier string) string { return "login:lock:" + identifier }

package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountBanned      = errors.New("account banned")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountLocked      = errors.New("account locked")
)

// FailedAttemptError is an invalid-credentials rejection carrying how many
// attempts remain before the account locks.
type FailedAttemptError struct {
	AttemptsLeft int
}

func (e *FailedAttemptError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempts remaining", e.AttemptsLeft)
}

func (e *FailedAttemptError) Unwrap() error { return ErrInvalidCredentials }

// LockedError is a throttling rejection carrying the remaining lock time.
// It is reported distinctly from a wrong password.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %s", FormatRemaining(e.Remaining))
}

func (e *LockedError) Unwrap() error { return ErrAccountLocked }

// FormatRemaining renders a lock window as whole minutes when at least a
// minute remains, otherwise as seconds.
func FormatRemaining(d time.Duration) string {
	if d >= time.Minute {
		mins := int((d + time.Minute - 1) / time.Minute)
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	if secs == 1 {
		return "1 second"
	}
	return fmt.Sprintf("%d seconds", secs)
}

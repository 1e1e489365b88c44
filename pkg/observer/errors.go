package observer

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrNilObserver is returned when a nil observer is passed to Register.
	ErrNilObserver = errors.New("observer: nil observer")

	// ErrAlreadyRegistered is returned when the same observer instance is
	// registered twice. Re-register after Deregister is allowed.
	ErrAlreadyRegistered = errors.New("observer: already registered")
)

// NotificationError wraps a failure raised from inside an observer's OnUpdate.
// It is recorded in the broadcast report and logged, never returned from
// SetState.
type NotificationError struct {
	Observer string
	Err      error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("observer: notifying %s: %v", e.Observer, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

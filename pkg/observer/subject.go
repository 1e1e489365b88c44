package observer

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// registration pairs an observer with the unique ID assigned on Register.
// The ID distinguishes observers sharing a name in logs and reports.
type registration[T any] struct {
	id  uuid.UUID
	obs Observer[T]
}

// Subject owns a state value of type T and an ordered observer registry.
// Every SetState call broadcasts the new state to a point-in-time snapshot
// of the registry, in registration order. All methods are safe for
// concurrent use; SetState must not be called from inside OnUpdate.
type Subject[T any] struct {
	// mu guards state and the registry, including the snapshot step of a
	// broadcast. Notifications run outside of it so Register and Deregister
	// are never blocked behind a slow observer.
	mu    sync.Mutex
	regs  []registration[T]
	state T

	// broadcastMu serializes broadcasts so that each one completes before
	// the next begins, even with concurrent SetState callers.
	broadcastMu sync.Mutex

	log *slog.Logger
}

// New creates a subject with a zero state and an empty registry.
func New[T any](opts ...Option) *Subject[T] {
	cfg := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Subject[T]{log: cfg.logger}
}

// Register appends the observer to the end of the registry.
// It returns ErrNilObserver for a nil observer and ErrAlreadyRegistered if
// the same instance is currently registered; the registry is left unchanged
// on failure.
func (s *Subject[T]) Register(obs Observer[T]) error {
	if obs == nil {
		return ErrNilObserver
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.regs {
		if r.obs == obs {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, obs.Name())
		}
	}

	id := uuid.New()
	s.regs = append(s.regs, registration[T]{id: id, obs: obs})
	s.log.Debug("observer registered",
		slog.String("observer", obs.Name()),
		slog.String("registration_id", id.String()),
		slog.Int("registry_size", len(s.regs)))
	return nil
}

// Deregister removes the observer if present. It is an idempotent no-op for
// observers that were never registered or were already removed.
func (s *Subject[T]) Deregister(obs Observer[T]) {
	if obs == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.regs {
		if r.obs == obs {
			s.regs = append(s.regs[:i], s.regs[i+1:]...)
			s.log.Debug("observer deregistered",
				slog.String("observer", obs.Name()),
				slog.String("registration_id", r.id.String()),
				slog.Int("registry_size", len(s.regs)))
			return
		}
	}
}

// SetState replaces the subject's state and broadcasts the new value to a
// snapshot of the registry taken at broadcast start. Observers removed after
// the snapshot still receive this broadcast; observers added after it do not.
//
// SetState never fails as a whole: every snapshotted observer gets exactly
// one notification attempt and the per-observer outcomes are returned as a
// Report. Failures are also logged with the observer's identity.
func (s *Subject[T]) SetState(state T) Report {
	s.broadcastMu.Lock()
	defer s.broadcastMu.Unlock()

	s.mu.Lock()
	s.state = state
	snapshot := make([]registration[T], len(s.regs))
	copy(snapshot, s.regs)
	s.mu.Unlock()

	s.log.Debug("state updated", slog.Int("observers", len(snapshot)))

	report := make(Report, 0, len(snapshot))
	for _, r := range snapshot {
		d := Delivery{Observer: r.obs.Name(), RegistrationID: r.id}
		if err := notify(r.obs, state); err != nil {
			d.Err = &NotificationError{Observer: d.Observer, Err: err}
			s.log.Error("observer notification failed",
				slog.String("observer", d.Observer),
				slog.String("registration_id", r.id.String()),
				slog.Any("error", err))
		}
		report = append(report, d)
	}
	return report
}

// State returns the current state for pull-style reads.
func (s *Subject[T]) State() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Len returns the number of registered observers.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.regs)
}

// notify invokes OnUpdate, converting a panic into an error so that one
// misbehaving observer cannot unwind the broadcast loop.
func notify[T any](obs Observer[T], state T) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in OnUpdate: %v", rec)
		}
	}()
	return obs.OnUpdate(state)
}

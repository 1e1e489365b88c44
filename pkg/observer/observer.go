package observer

import "github.com/google/uuid"

// Observer receives state updates from a Subject.
// Implementations must not block indefinitely inside OnUpdate; delivery is
// synchronous and a hung observer stalls the rest of the broadcast.
type Observer[T any] interface {
	// Name identifies the observer in logs and delivery reports.
	Name() string

	// OnUpdate receives the subject's state after each mutation.
	// A non-nil error marks the delivery as failed; the failure is the
	// subject's concern and must not be suppressed by the observer.
	OnUpdate(state T) error
}

// Delivery is the outcome of one notification attempt during a broadcast.
type Delivery struct {
	// Observer is the name of the notified observer.
	Observer string
	// RegistrationID is the unique ID assigned when the observer was registered.
	RegistrationID uuid.UUID
	// Err is nil on success, or a *NotificationError describing the failure.
	Err error
}

// OK reports whether the delivery succeeded.
func (d Delivery) OK() bool {
	return d.Err == nil
}

// Report collects delivery outcomes for one broadcast, in snapshot order.
// It contains exactly one entry per observer present in the registry when
// the broadcast started.
type Report []Delivery

// OK reports whether every delivery in the broadcast succeeded.
func (r Report) OK() bool {
	for _, d := range r {
		if d.Err != nil {
			return false
		}
	}
	return true
}

// Failed returns the deliveries that failed, in snapshot order.
func (r Report) Failed() []Delivery {
	var failed []Delivery
	for _, d := range r {
		if d.Err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

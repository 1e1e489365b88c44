// Package observer provides a generic, type-safe subject/observer broadcast
// core. A Subject owns a mutable state value and an ordered registry of
// observers; every state mutation pushes the new state to all observers that
// were registered when the broadcast started.
//
// Delivery is synchronous and fault-isolated: a failing (or panicking)
// observer never prevents delivery to the remaining observers, and SetState
// always returns normally with a per-observer delivery report.
//
// Basic usage:
//
//	subject := observer.New[int]()
//
//	if err := subject.Register(myObserver); err != nil {
//		// Handle error
//	}
//
//	report := subject.SetState(42)
//	for _, d := range report.Failed() {
//		fmt.Println("delivery failed:", d.Observer, d.Err)
//	}
//
// Observers are compared by interface identity, so the same instance cannot
// be registered twice. Registration and deregistration are safe to call from
// inside an observer's OnUpdate; the broadcast in progress keeps working from
// the snapshot taken when it started.
package observer

package weather

import "github.com/dmitrymomot/statewatch/pkg/observer"

// Station owns the current reading and broadcasts every measurement update
// to its registered displays. It is a thin domain wrapper around a generic
// observer.Subject.
type Station struct {
	subject *observer.Subject[Reading]
}

// NewStation creates a station with a zero reading and no displays.
func NewStation(opts ...observer.Option) *Station {
	return &Station{subject: observer.New[Reading](opts...)}
}

// Register subscribes a display to measurement updates.
func (s *Station) Register(obs observer.Observer[Reading]) error {
	return s.subject.Register(obs)
}

// Deregister removes a display; unknown displays are a no-op.
func (s *Station) Deregister(obs observer.Observer[Reading]) {
	s.subject.Deregister(obs)
}

// SetMeasurements records a new set of sensor values and broadcasts the
// resulting reading to all registered displays. The returned report carries
// the per-display delivery outcomes.
func (s *Station) SetMeasurements(temperature, humidity, pressure float64) observer.Report {
	return s.subject.SetState(Reading{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	})
}

// Reading returns the most recent reading for pull-style access.
func (s *Station) Reading() Reading {
	return s.subject.State()
}

// Displays returns the number of registered displays.
func (s *Station) Displays() int {
	return s.subject.Len()
}

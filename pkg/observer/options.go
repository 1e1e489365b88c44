package observer

import "log/slog"

// Option configures subject creation.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets the log sink for registration events and per-observer
// failure reports. Nil loggers are ignored; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

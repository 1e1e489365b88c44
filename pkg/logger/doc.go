// Package logger builds configured slog.Logger instances with sensible
// defaults: JSON output at info level for production, switchable to a
// human-readable text format for development.
//
//	log := logger.New(
//		logger.WithTextFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "weatherwatch")),
//	)
package logger

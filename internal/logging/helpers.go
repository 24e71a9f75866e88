package logging

import "log/slog"

// Components treat their logger as optional; these wrappers keep call sites
// free of nil checks.

// Info logs at info level when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

// Warn logs at warn level when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, args...)
}

// Error logs at error level, attaching err under FieldError when non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	logger.Error(msg, args...)
}

// WithIdentity returns a child logger keyed to one receipt identity, so the
// lines of a posting sequence correlate without repeating the field. A nil
// logger stays nil; the wrappers above absorb it.
func WithIdentity(logger *slog.Logger, identity string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String(FieldIdentity, identity))
}

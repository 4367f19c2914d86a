package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger adapts a structured 'slog.Logger' to the 'Logger' interface so applications already using 'log/slog'
// can plug their logger straight into the library.
type SlogLogger struct {
	inner *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger creates a logger backed by the given structured logger, a nil value means the process default.
func NewSlogLogger(inner *slog.Logger) *SlogLogger {
	if inner == nil {
		inner = slog.Default()
	}

	return &SlogLogger{inner: inner}
}

// Log formats the given message and hands it to the underlying structured logger.
func (s *SlogLogger) Log(level Level, format string, args ...any) {
	s.inner.Log(context.Background(), slogLevel(level), fmt.Sprintf(format, args...))
}

// slogLevel maps a library log level onto the levels understood by 'log/slog'.
//
// NOTE: Trace has no 'slog' equivalent, it is mapped below debug following the 'slog' level numbering convention.
func slogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	}

	return slog.LevelError
}

package rlog

import (
	"context"
	"log/slog"
)

// SlogAdapter backs a Logger with log/slog, threading ctx through for
// handlers that attach trace information.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter adapts logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Log(ctx context.Context, level Level, msg string, attrs ...Attribute) {
	sl := levelToSlog(level)
	slogAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		slogAttrs[i] = slog.Any(a.Key, a.Value)
	}
	s.logger.LogAttrs(ctx, sl, msg, slogAttrs...)
}

func (s *SlogAdapter) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, levelToSlog(level))
}

func levelToSlog(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

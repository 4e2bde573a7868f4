package rlog

import (
	"context"

	"github.com/rs/zerolog"
)

// ZerologAdapter backs a Logger with zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter adapts logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

func (z *ZerologAdapter) Log(_ context.Context, level Level, msg string, attrs ...Attribute) {
	var evt *zerolog.Event
	switch level {
	case DebugLevel:
		evt = z.logger.Debug()
	case InfoLevel:
		evt = z.logger.Info()
	case WarnLevel:
		evt = z.logger.Warn()
	case ErrorLevel:
		evt = z.logger.Error()
	default:
		evt = z.logger.Info()
	}
	for _, a := range attrs {
		evt = evt.Interface(a.Key, a.Value)
	}
	evt.Msg(msg)
}

func (z *ZerologAdapter) Enabled(_ context.Context, level Level) bool {
	return z.logger.GetLevel() <= levelToZerolog(level)
}

func levelToZerolog(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

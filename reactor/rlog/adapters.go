package rlog

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// StandardAdapter backs a Logger with the standard library log package. It
// has no level filtering: Enabled always reports true.
type StandardAdapter struct {
	logger *log.Logger
}

// NewStandardAdapter adapts logger.
func NewStandardAdapter(logger *log.Logger) *StandardAdapter {
	return &StandardAdapter{logger: logger}
}

func (s *StandardAdapter) Log(_ context.Context, level Level, msg string, attrs ...Attribute) {
	if len(attrs) == 0 {
		s.logger.Printf("%s %s", level.tag(), msg)
		return
	}
	strs := make([]string, 0, len(attrs))
	for _, a := range attrs {
		strs = append(strs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	s.logger.Printf("%s %s %s", level.tag(), msg, strings.Join(strs, " "))
}

func (s *StandardAdapter) Enabled(context.Context, Level) bool { return true }

func (l Level) tag() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "LOG"
	}
}

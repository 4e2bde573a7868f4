// Package rlog is the optional logging adapter for reactor's diagnostics
// seam (reactor.DiagLogger). The core package never imports rlog; a
// *Logger satisfies DiagLogger structurally, so wiring one in is a matter of
// passing it to reactor.WithLogger.
package rlog

import (
	"context"
	"fmt"
	"log"
)

// Level orders the four severities a Logger can report at.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Attribute is a structured key-value pair attached to a log line.
type Attribute struct {
	Key   string
	Value any
}

// Attr builds an Attribute.
func Attr(key string, value any) Attribute { return Attribute{Key: key, Value: value} }

// Adapter is the contract a logging backend implements to back a Logger.
type Adapter interface {
	Log(ctx context.Context, level Level, msg string, attrs ...Attribute)
	Enabled(ctx context.Context, level Level) bool
}

// Logger wraps a backend Adapter and is the concrete diagnostics logger
// wired through reactor.WithLogger. It also satisfies reactor.DiagLogger
// directly via Warn, so reactor.WithLogger(rlog.Default()) is enough.
type Logger struct {
	backend Adapter
	ctx     context.Context
}

// New wraps backend in a Logger.
func New(backend Adapter) *Logger {
	return &Logger{backend: backend, ctx: context.Background()}
}

// Default returns a Logger backed by the standard library log package.
func Default() *Logger {
	return New(NewStandardAdapter(log.Default()))
}

// WithContext returns a copy of l that attaches ctx to every subsequent
// call, used by backends (slog) that thread context for tracing.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	return &Logger{backend: l.backend, ctx: ctx}
}

func (l *Logger) log(level Level, msg string, attrs ...Attribute) {
	if !l.backend.Enabled(l.ctx, level) {
		return
	}
	l.backend.Log(l.ctx, level, msg, attrs...)
}

func (l *Logger) Debug(msg string, attrs ...Attribute) { l.log(DebugLevel, msg, attrs...) }
func (l *Logger) Info(msg string, attrs ...Attribute)  { l.log(InfoLevel, msg, attrs...) }
func (l *Logger) Error(msg string, attrs ...Attribute) { l.log(ErrorLevel, msg, attrs...) }

// Warn implements reactor.DiagLogger: kv is a flat, alternating sequence of
// keys and values, following the convention of the teacher's structured
// log call sites (zerolog's Event.Interface / slog's LogAttrs).
func (l *Logger) Warn(msg string, kv ...any) {
	attrs := make([]Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}
		attrs = append(attrs, Attr(key, kv[i+1]))
	}
	l.log(WarnLevel, msg, attrs...)
}

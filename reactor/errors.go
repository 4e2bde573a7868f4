package reactor

import "fmt"

// ViolationError is delivered downstream when an arity-enforcing wrapper
// (see ViolationPolicy) observes an upstream signal that breaks the
// contract for its arity: an item on Mute, a second item on Mono/Maybe, a
// terminal before Mono's required item, or a signal after the stream is
// already done.
//
// It is constructed by the wrappers and by the Maybe/Mono generators in this
// package; callers compare against it with errors.As.
type ViolationError struct {
	// Kind is the signal that triggered the violation.
	Kind Kind
	// Reason is a short, stable, human-readable description.
	Reason string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("reactor: protocol violation on %s: %s", e.Kind, e.Reason)
}

func violation(k Kind, reason string) *ViolationError {
	return &ViolationError{Kind: k, Reason: reason}
}

// DiagLogger is the narrow logging seam the arity wrappers report protocol
// violations through; buffering operators do not log. It is satisfied structurally — reactor/rlog's
// adapters implement it without this package importing rlog, keeping the
// core ignorant of any concrete logging backend.
type DiagLogger interface {
	Warn(msg string, kv ...any)
}

// DiagRecorder is the narrow metrics seam the core reports through.
// reactor/rmetrics's Prometheus-backed Recorder implements it structurally.
type DiagRecorder interface {
	ItemEmitted(arity string)
	Violation(kind Kind)
	BufferDepth(arity string, depth int)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

type nopRecorder struct{}

func (nopRecorder) ItemEmitted(string)      {}
func (nopRecorder) Violation(Kind)          {}
func (nopRecorder) BufferDepth(string, int) {}

// diag bundles the optional diagnostics a wrapper or buffering operator was
// configured with, defaulting both to no-ops so the hot path never has to
// nil-check.
type diag struct {
	log DiagLogger
	rec DiagRecorder
}

func defaultDiag() diag {
	return diag{log: nopLogger{}, rec: nopRecorder{}}
}

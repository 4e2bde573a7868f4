package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Script is a recording receiver satisfying MuteReceiver, MonoReceiver[T],
// MaybeReceiver[T], and ManyReceiver[T] all at once, so the same value can
// subscribe to any arity under test. Every callback it receives is appended
// to Signals as a Signal[T], giving a test a single comparable trace to
// assert against instead of a scatter of per-test bookkeeping fields.
//
// Demand is driven by an optional program: a sequence of Request sizes
// issued one per call to Next, starting with the first at Open. Once the
// program is exhausted (or for a zero-value Script with no program at all),
// Next requests everything remaining, so a bare Script still drives its
// source to completion without a test having to manage demand.
type Script[T any] struct {
	Signals []Signal[T]

	program []int64
	pos     int
	pipe    Pipe
}

// NewScript returns a Script whose demand is paced by program: program[0]
// is requested at Open, program[1] at the first explicit call to Next, and
// so on.
func NewScript[T any](program ...int64) *Script[T] {
	return &Script[T]{program: program}
}

func (s *Script[T]) Open(p Pipe) {
	s.pipe = p
	s.Signals = append(s.Signals, Open[T]())
	s.Next()
}

// Next issues the next entry of the demand program upstream, or
// RequestAll once the program is exhausted.
func (s *Script[T]) Next() {
	if s.pipe == nil {
		return
	}
	if s.pos >= len(s.program) {
		s.pipe.RequestAll()
		return
	}
	n := s.program[s.pos]
	s.pos++
	s.pipe.Request(n)
}

// Close closes the subscription this Script is driving.
func (s *Script[T]) Close() {
	if s.pipe != nil {
		s.pipe.Close()
	}
}

func (s *Script[T]) Receive(item T) {
	s.Signals = append(s.Signals, Item(item))
}

func (s *Script[T]) Complete() {
	s.Signals = append(s.Signals, Complete[T]())
}

// CompleteWith satisfies MonoReceiver and MaybeReceiver: it records the
// item and the terminal as the two signals a general Receiver would have
// delivered separately.
func (s *Script[T]) CompleteWith(item T) {
	s.Signals = append(s.Signals, Item(item), Complete[T]())
}

func (s *Script[T]) CompleteEmpty() {
	s.Signals = append(s.Signals, Complete[T]())
}

func (s *Script[T]) Error(err error) {
	s.Signals = append(s.Signals, Error[T](err))
}

// Assert fails t unless the recorded trace equals want exactly, in order.
func (s *Script[T]) Assert(t *testing.T, want ...Signal[T]) {
	t.Helper()
	assert.Equal(t, want, s.Signals)
}

package reactor

import "fmt"

// Kind tags the four signals of the protocol: Open, Item, Complete, Error.
type Kind int

const (
	KindOpen Kind = iota
	KindItem
	KindComplete
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindItem:
		return "item"
	case KindComplete:
		return "complete"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Signal is a recorded occurrence of one of the four protocol callbacks,
// used by the test harness (see Script) to script and assert expected
// traces. It is never part of the live emit path — Receiver callbacks are
// plain method calls, not Signal values — but gives tests and diagnostics a
// single comparable representation of "what happened".
type Signal[T any] struct {
	Kind Kind
	Item T
	Err  error
}

// Open reports the Open signal did occur without needing to compare a Pipe
// (Pipe identity is never part of an equality check).
func Open[T any]() Signal[T] { return Signal[T]{Kind: KindOpen} }

// Item reports an Item(v) signal.
func Item[T any](v T) Signal[T] { return Signal[T]{Kind: KindItem, Item: v} }

// Complete reports a Complete signal.
func Complete[T any]() Signal[T] { return Signal[T]{Kind: KindComplete} }

// Error reports an Error(err) signal.
func Error[T any](err error) Signal[T] { return Signal[T]{Kind: KindError, Err: err} }

func (s Signal[T]) String() string {
	switch s.Kind {
	case KindItem:
		return fmt.Sprintf("Item(%v)", s.Item)
	case KindError:
		return fmt.Sprintf("Error(%v)", s.Err)
	default:
		return s.Kind.String()
	}
}

// Pipe is the upstream-facing control handle an emitter lends a receiver at
// Open. It conveys demand (Request) and cancellation (Close). A Pipe is
// one-way: it exposes no queryable state beyond its own effects.
//
// Request(n) with n < 0 means "all remaining" and latches infinite demand;
// Request(0) is an explicit no-op. Close must make Request and further
// Close calls idempotent no-ops.
type Pipe interface {
	Request(n int64)
	RequestAll()
	Close()
}

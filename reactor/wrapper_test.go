package reactor

import (
	"errors"
	"testing"
)

func TestWrapMute_ItemIsViolation_Ignore(t *testing.T) {
	s := NewScript[struct{}]()
	w := WrapMute(s)
	w.Open(neverPipe{})
	w.Receive(struct{}{}) // violation, Ignore policy: dropped
	w.Complete()
	s.Assert(t, Open[struct{}](), Complete[struct{}]())
}

func TestWrapMute_ItemIsViolation_Delegate(t *testing.T) {
	s := NewScript[struct{}]()
	w := WrapMute(s, WithPolicy(Delegate))
	w.Open(neverPipe{})
	w.Receive(struct{}{})

	if len(s.Signals) != 2 || s.Signals[1].Kind != KindError {
		t.Fatalf("signals = %v, want [Open, Error]", s.Signals)
	}
	var ve *ViolationError
	if !errors.As(s.Signals[1].Err, &ve) {
		t.Fatalf("error = %v, want *ViolationError", s.Signals[1].Err)
	}
	if ve.Kind != KindItem {
		t.Errorf("ViolationError.Kind = %v, want KindItem", ve.Kind)
	}

	// The wrapper is already done once Delegate has fired once; a second
	// terminal arriving afterwards finds isDone() true and is dropped
	// rather than delivered a second time.
	w.Complete()
	if len(s.Signals) != 2 {
		t.Fatalf("signals after second terminal = %v, want still 2 entries", s.Signals)
	}
}

func TestWrapMute_Throw_Panics(t *testing.T) {
	s := NewScript[struct{}]()
	w := WrapMute(s, WithPolicy(Throw))
	w.Open(neverPipe{})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic under Throw policy")
		}
		if _, ok := r.(*ViolationError); !ok {
			t.Errorf("recovered %v (%T), want *ViolationError", r, r)
		}
	}()
	w.Receive(struct{}{})
}

func TestWrapMono_HappyPath(t *testing.T) {
	s := NewScript[int]()
	w := WrapMono[int](s)
	w.Open(neverPipe{})
	w.Receive(5)
	w.Complete()
	s.Assert(t, Open[int](), Item(5), Complete[int]())
}

func TestWrapMono_SecondItemIsViolation(t *testing.T) {
	s := NewScript[int]()
	w := WrapMono[int](s, WithPolicy(Delegate))
	w.Open(neverPipe{})
	w.Receive(1)
	w.Receive(2) // violation: beyond Mono's single-item budget

	if len(s.Signals) != 2 || s.Signals[1].Kind != KindError {
		t.Fatalf("signals = %v, want [Open, Error]", s.Signals)
	}
}

func TestWrapMono_CompleteBeforeItemIsViolation(t *testing.T) {
	s := NewScript[int]()
	w := WrapMono[int](s, WithPolicy(Delegate))
	w.Open(neverPipe{})
	w.Complete()

	if len(s.Signals) != 2 || s.Signals[1].Kind != KindError {
		t.Fatalf("signals = %v, want [Open, Error]", s.Signals)
	}
}

func TestWrapMaybe_EmptyAndPresent(t *testing.T) {
	empty := NewScript[int]()
	we := WrapMaybe[int](empty)
	we.Open(neverPipe{})
	we.Complete()
	empty.Assert(t, Open[int](), Complete[int]())

	present := NewScript[int]()
	wp := WrapMaybe[int](present)
	wp.Open(neverPipe{})
	wp.Receive(9)
	wp.Complete()
	present.Assert(t, Open[int](), Item(9), Complete[int]())
}

func TestWrapMany_ItemAfterTerminalIsDropped(t *testing.T) {
	s := NewScript[int](0) // suppress Script's own RequestAll at Open
	w := WrapMany[int](s, WithPolicy(Delegate))
	w.Open(neverPipe{})
	w.Complete()
	w.Receive(1) // after terminal: violation, but wrapper is already done

	s.Assert(t, Open[int](), Complete[int]())
}

func TestWithRecorder_ReportsItemEmitted(t *testing.T) {
	counts := map[string]int{}
	rec := recorderFunc{itemEmitted: func(arity string) { counts[arity]++ }}

	s := NewScript[int]()
	w := WrapMono[int](s, WithRecorder(rec))
	w.Open(neverPipe{})
	w.Receive(1)
	w.Complete()

	if counts["mono"] != 1 {
		t.Errorf("counts[mono] = %d, want 1", counts["mono"])
	}
}

// recorderFunc is a minimal DiagRecorder double for tests that only care
// about one of the three callbacks.
type recorderFunc struct {
	itemEmitted func(string)
	violation   func(Kind)
	bufferDepth func(string, int)
}

func (r recorderFunc) ItemEmitted(arity string) {
	if r.itemEmitted != nil {
		r.itemEmitted(arity)
	}
}
func (r recorderFunc) Violation(k Kind) {
	if r.violation != nil {
		r.violation(k)
	}
}
func (r recorderFunc) BufferDepth(arity string, depth int) {
	if r.bufferDepth != nil {
		r.bufferDepth(arity, depth)
	}
}

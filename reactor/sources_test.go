package reactor

import (
	"errors"
	"testing"
)

func TestMuteEmpty(t *testing.T) {
	s := NewScript[struct{}]()
	MuteEmpty().Subscribe(s)
	s.Assert(t, Open[struct{}](), Complete[struct{}]())
}

func TestMaybeEmpty(t *testing.T) {
	s := NewScript[int]()
	MaybeEmpty[int]().Subscribe(s)
	s.Assert(t, Open[int](), Complete[int]())
}

func TestMonoJust(t *testing.T) {
	s := NewScript[int]()
	MonoJust(3).Subscribe(s)
	s.Assert(t, Open[int](), Item(3), Complete[int]())
}

func TestMaybeJust(t *testing.T) {
	s := NewScript[string]()
	MaybeJust("hi").Subscribe(s)
	s.Assert(t, Open[string](), Item("hi"), Complete[string]())
}

func TestManyJust(t *testing.T) {
	s := NewScript[int]()
	ManyJust(6, 7, 4, 2).Subscribe(s)
	s.Assert(t, Open[int](),
		Item(6), Item(7), Item(4), Item(2),
		Complete[int]())
}

func TestManyFromSlice_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	m := ManyFromSlice(src)
	src[0] = 99 // mutate after construction, before subscribe

	s := NewScript[int]()
	m.Subscribe(s)
	s.Assert(t, Open[int](), Item(1), Item(2), Item(3), Complete[int]())
}

func TestNever_DeliversOnlyOpen(t *testing.T) {
	s := NewScript[int]()
	Never[int]().Subscribe(s)
	s.Assert(t, Open[int]())
}

type erroringIterator struct{ called bool }

func (it *erroringIterator) Next() (int, bool, error) {
	if it.called {
		return 0, false, nil
	}
	it.called = true
	return 0, false, errors.New("iterator broke")
}

func TestManyFromIterator_PropagatesError(t *testing.T) {
	s := NewScript[int]()
	ManyFromIterator[int](&erroringIterator{}).Subscribe(s)

	if len(s.Signals) != 2 {
		t.Fatalf("signals = %v, want 2 entries", s.Signals)
	}
	if s.Signals[0].Kind != KindOpen {
		t.Errorf("signals[0] = %v, want Open", s.Signals[0])
	}
	if s.Signals[1].Kind != KindError {
		t.Errorf("signals[1] = %v, want Error", s.Signals[1])
	}
}

func TestManyFromIterator_DemandPacesDelivery(t *testing.T) {
	s := NewScript[int](2, 2) // 2 at open, 2 more on next Next()
	ManyFromIterator[int](&sliceIterator[int]{items: []int{1, 2, 3, 4}}).Subscribe(s)

	if len(s.Signals) != 3 { // Open, Item(1), Item(2) — demand exhausted
		t.Fatalf("signals after initial demand = %v, want 3 entries", s.Signals)
	}

	s.Next()
	s.Assert(t, Open[int](), Item(1), Item(2), Item(3), Item(4), Complete[int]())
}

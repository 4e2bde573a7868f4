package reactor

import (
	"errors"
	"strconv"
	"testing"
)

func TestMapMono(t *testing.T) {
	s := NewScript[string]()
	MapMono(MonoJust(3), func(n int) (string, error) {
		return strconv.Itoa(n * 2), nil
	}).Subscribe(s)
	s.Assert(t, Open[string](), Item("6"), Complete[string]())
}

func TestMapMaybe_Empty(t *testing.T) {
	s := NewScript[string]()
	MapMaybe(MaybeEmpty[int](), func(n int) (string, error) {
		t.Fatal("f should not be called for an empty Maybe")
		return "", nil
	}).Subscribe(s)
	s.Assert(t, Open[string](), Complete[string]())
}

func TestMapMany(t *testing.T) {
	s := NewScript[int]()
	MapMany(ManyJust(1, 2, 3), func(n int) (int, error) {
		return n * n, nil
	}).Subscribe(s)
	s.Assert(t, Open[int](), Item(1), Item(4), Item(9), Complete[int]())
}

func TestMapMany_ErrorFromFStopsStage(t *testing.T) {
	boom := errors.New("boom")
	s := NewScript[int]()
	MapMany(ManyJust(1, 2, 3), func(n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	}).Subscribe(s)

	s.Assert(t, Open[int](), Item(1), Error[int](boom))
}

func TestMapMono_DemandPassesThrough(t *testing.T) {
	// A Mono wraps a single-item source; Map must not alter how much demand
	// reaches upstream, it only transforms the payload in flight.
	s := NewScript[string](0)
	MapMono(MonoJust(3), func(n int) (string, error) {
		return strconv.Itoa(n), nil
	}).Subscribe(s)

	if len(s.Signals) != 1 || s.Signals[0].Kind != KindOpen {
		t.Fatalf("signals with zero initial demand = %v, want just [Open]", s.Signals)
	}

	s.Next() // RequestAll once the program is exhausted
	s.Assert(t, Open[string](), Item("3"), Complete[string]())
}

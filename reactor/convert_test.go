package reactor

import "testing"

func TestMuteToMaybe(t *testing.T) {
	s := NewScript[int]()
	MuteToMaybe[int](MuteEmpty()).Subscribe(s)
	s.Assert(t, Open[int](), Complete[int]())
}

func TestMuteToMany(t *testing.T) {
	s := NewScript[int]()
	MuteToMany[int](MuteEmpty()).Subscribe(s)
	s.Assert(t, Open[int](), Complete[int]())
}

func TestMonoToMaybe(t *testing.T) {
	s := NewScript[int]()
	MonoToMaybe(MonoJust(5)).Subscribe(s)
	s.Assert(t, Open[int](), Item(5), Complete[int]())
}

func TestMonoToMany(t *testing.T) {
	s := NewScript[int]()
	MonoToMany(MonoJust(5)).Subscribe(s)
	s.Assert(t, Open[int](), Item(5), Complete[int]())
}

func TestMaybeToMany(t *testing.T) {
	s := NewScript[int]()
	MaybeToMany(MaybeJust(5)).Subscribe(s)
	s.Assert(t, Open[int](), Item(5), Complete[int]())
}

func TestMuteToMono_SynthesizesItem(t *testing.T) {
	s := NewScript[int]()
	MuteToMono(MuteEmpty(), func() int { return 99 }).Subscribe(s)
	s.Assert(t, Open[int](), Item(99), Complete[int]())
}

func TestMaybeToMono_Present(t *testing.T) {
	s := NewScript[int]()
	MaybeToMono(MaybeJust(7), func() int {
		t.Fatal("absent should not be called when Maybe delivers an item")
		return 0
	}).Subscribe(s)
	s.Assert(t, Open[int](), Item(7), Complete[int]())
}

func TestMaybeToMono_Absent(t *testing.T) {
	s := NewScript[int]()
	MaybeToMono(MaybeEmpty[int](), func() int { return -1 }).Subscribe(s)
	s.Assert(t, Open[int](), Item(-1), Complete[int]())
}

func TestMonoToMute_DiscardsItem(t *testing.T) {
	s := NewScript[struct{}]()
	MonoToMute(MonoJust(42)).Subscribe(s)
	s.Assert(t, Open[struct{}](), Complete[struct{}]())
}

func TestMaybeToMute_DiscardsItem(t *testing.T) {
	s := NewScript[struct{}]()
	MaybeToMute(MaybeJust(42)).Subscribe(s)
	s.Assert(t, Open[struct{}](), Complete[struct{}]())
}

func TestManyToMute_DiscardsAllItems(t *testing.T) {
	s := NewScript[struct{}]()
	ManyToMute(ManyJust(1, 2, 3)).Subscribe(s)
	s.Assert(t, Open[struct{}](), Complete[struct{}]())
}

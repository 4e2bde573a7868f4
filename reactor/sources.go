package reactor

// Iterator is a one-shot pull source consumed by ManyFromIterator. Next
// returns the next item, ok=false once exhausted, or a non-nil err if the
// underlying source failed (forwarded downstream as an Error signal).
type Iterator[T any] interface {
	Next() (item T, ok bool, err error)
}

// hasNexter is an optional capability an Iterator can implement to let the
// iterable generator emit Complete the moment exhaustion is known, instead
// of waiting for a wasted extra Request round-trip.
type hasNexter interface {
	HasNext() bool
}

// sliceIterator adapts a slice to Iterator.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Next() (item T, ok bool, err error) {
	if it.pos >= len(it.items) {
		return item, false, nil
	}
	item = it.items[it.pos]
	it.pos++
	return item, true, nil
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

// --- never ------------------------------------------------------------

type neverPipe struct{}

func (neverPipe) Request(int64) {}
func (neverPipe) RequestAll()   {}
func (neverPipe) Close()        {}

// Never returns a Many that delivers Open with a no-op pipe and then never
// emits another signal, for any subscriber.
func Never[T any]() Many[T] {
	return Many[T]{src: emitterFunc[T](func(r Receiver[T]) {
		r.Open(neverPipe{})
	})}
}

// --- empty --------------------------------------------------------------

type emptyGen[T any] struct {
	genCore[T]
}

func (g *emptyGen[T]) Request(n int64) {
	if g.closed || n == 0 {
		return
	}
	g.emitComplete()
}

func (g *emptyGen[T]) RequestAll() { g.Request(Infinite) }

func emptyEmitter[T any]() Emitter[T] {
	return emitterFunc[T](func(r Receiver[T]) {
		g := &emptyGen[T]{genCore: genCore[T]{down: r}}
		r.Open(g)
	})
}

// MuteEmpty returns the Mute source: it completes immediately once demand
// arrives, having delivered zero items.
func MuteEmpty() Mute {
	return Mute{src: emptyEmitter[muteItem]()}
}

// MaybeEmpty returns a Maybe source that completes empty.
func MaybeEmpty[T any]() Maybe[T] {
	return Maybe[T]{src: emptyEmitter[T]()}
}

// --- single ---------------------------------------------------------------

type singleGen[T any] struct {
	genCore[T]
	value   T
	emitted bool
}

func (g *singleGen[T]) Request(n int64) {
	if g.closed || g.emitted || n == 0 {
		return
	}
	g.emitted = true
	if g.emit(g.value) {
		g.emitComplete()
	}
}

func (g *singleGen[T]) RequestAll() { g.Request(Infinite) }

func singleEmitter[T any](v T) Emitter[T] {
	return emitterFunc[T](func(r Receiver[T]) {
		g := &singleGen[T]{genCore: genCore[T]{down: r}, value: v}
		r.Open(g)
	})
}

// MonoJust returns a Mono that delivers v, then completes.
func MonoJust[T any](v T) Mono[T] {
	return Mono[T]{src: singleEmitter[T](v)}
}

// MaybeJust returns a Maybe that delivers v, then completes.
func MaybeJust[T any](v T) Maybe[T] {
	return Maybe[T]{src: singleEmitter[T](v)}
}

// --- iterable -------------------------------------------------------------

type iterableGen[T any] struct {
	genCore[T]
	it Iterator[T]
}

func (g *iterableGen[T]) Request(n int64) {
	if g.closed || n == 0 {
		return
	}
	infinite := n < 0
	remaining := n
	for infinite || remaining > 0 {
		if g.closed {
			return
		}
		item, ok, err := g.it.Next()
		if err != nil {
			g.emitError(err)
			return
		}
		if !ok {
			g.emitComplete()
			return
		}
		if !g.emit(item) {
			return
		}
		if !infinite {
			remaining--
		}
		if hn, ok := g.it.(hasNexter); ok && !hn.HasNext() {
			g.emitComplete()
			return
		}
	}
}

func (g *iterableGen[T]) RequestAll() { g.Request(Infinite) }

func iterableEmitter[T any](it Iterator[T]) Emitter[T] {
	return emitterFunc[T](func(r Receiver[T]) {
		g := &iterableGen[T]{genCore: genCore[T]{down: r}, it: it}
		r.Open(g)
	})
}

// ManyJust returns a Many that delivers vs in order, then completes.
func ManyJust[T any](vs ...T) Many[T] {
	return ManyFromSlice(vs)
}

// ManyFromSlice returns a Many that delivers a copy of s in order, then
// completes. The slice is copied so later mutation by the caller can't
// change an in-flight subscription.
func ManyFromSlice[T any](s []T) Many[T] {
	cp := make([]T, len(s))
	copy(cp, s)
	return Many[T]{src: iterableEmitter[T](&sliceIterator[T]{items: cp})}
}

// ManyFromIterator returns a Many driven by a caller-supplied one-shot
// Iterator, pulling at most as many items per Request as authorized.
func ManyFromIterator[T any](it Iterator[T]) Many[T] {
	return Many[T]{src: iterableEmitter[T](it)}
}

package reactor

import "errors"

// ErrCancelled is the error a suspended Sink.Emit returns once its
// generator has been closed. A coroutine body must propagate it (return it,
// not swallow it) so the stage can unwind cleanly; the core never treats it
// as a reported Error (spec §7, category 3).
var ErrCancelled = errors.New("reactor: coroutine cancelled")

// Sink is what a coroutine-driven generator body emits through. Emit
// suspends the coroutine until demand is available, consumes one unit of
// demand, then forwards the item downstream. If the stage is closed while
// Emit is suspended (or just after it resumes), Emit returns ErrCancelled.
type Sink[T any] interface {
	Emit(item T) error
}

type coroState int

const (
	coroNotStarted coroState = iota
	coroSuspended
	coroFinished
)

type yieldMsg struct {
	done bool
	err  error
}

// coroGen drives a user-supplied suspendable producer cooperatively on the
// caller's goroutine, per spec §4.9: the body itself runs on a second
// goroutine, but at any instant exactly one of {driving goroutine,
// coroutine goroutine} is runnable — they hand off control through a pair
// of unbuffered channels, which is this package's idiomatic-Go rendering of
// the "green thread" strategy spec.md §9 sanctions for languages without
// first-class coroutines.
type coroGen[T any] struct {
	genCore[T]
	demand    RequestCount
	body      func(Sink[T]) error
	state     coroState
	running   bool
	cancelled bool
	resumeCh  chan struct{}
	yieldCh   chan yieldMsg
}

func (g *coroGen[T]) Request(n int64) {
	if g.closed || g.state == coroFinished {
		return
	}
	g.demand.Request(n)
	if n == 0 {
		return
	}
	if g.running {
		// Re-entrancy guard: a request arriving while the coroutine is
		// already running must not attempt to resume it a second time.
		return
	}
	switch g.state {
	case coroNotStarted:
		g.resumeCh = make(chan struct{})
		g.yieldCh = make(chan yieldMsg)
		g.running = true
		go g.run()
		g.wait()
	case coroSuspended:
		g.running = true
		g.resumeCh <- struct{}{}
		g.wait()
	}
}

func (g *coroGen[T]) RequestAll() { g.Request(Infinite) }

func (g *coroGen[T]) run() {
	err := g.body(&sink[T]{g: g})
	g.yieldCh <- yieldMsg{done: true, err: err}
}

// wait blocks the driving goroutine until the coroutine either suspends at
// its next Emit or returns.
func (g *coroGen[T]) wait() {
	msg := <-g.yieldCh
	g.running = false
	if !msg.done {
		g.state = coroSuspended
		return
	}
	g.state = coroFinished
	switch {
	case errors.Is(msg.err, ErrCancelled):
		// Cancellation isn't an error; nothing left to deliver.
	case msg.err != nil:
		g.emitError(msg.err)
	default:
		g.emitComplete()
	}
}

// Close cancels the coroutine. A suspended Emit is resumed immediately so
// it can observe cancellation and unwind; a running one (this Close call is
// itself nested inside the coroutine's own Receive callback) is not resumed
// here: the Emit that made that Receive call returns ErrCancelled once the
// callback returns.
func (g *coroGen[T]) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.cancelled = true
	if g.running {
		return
	}
	if g.state == coroSuspended {
		g.running = true
		g.resumeCh <- struct{}{}
		<-g.yieldCh
		g.running = false
		g.state = coroFinished
	}
}

type sink[T any] struct{ g *coroGen[T] }

func (s *sink[T]) Emit(item T) error {
	g := s.g
	for !g.demand.Has(1) {
		g.yieldCh <- yieldMsg{done: false}
		<-g.resumeCh
		if g.cancelled {
			return ErrCancelled
		}
	}
	if g.cancelled {
		return ErrCancelled
	}
	g.demand.Withdraw(1)
	g.down.Receive(item)
	if g.cancelled {
		return ErrCancelled
	}
	return nil
}

func generateEmitter[T any](body func(Sink[T]) error) Emitter[T] {
	return emitterFunc[T](func(r Receiver[T]) {
		g := &coroGen[T]{body: body}
		g.down = r
		r.Open(g)
	})
}

// ManyGenerate returns a Many driven by body, which may call Emit any
// number of times.
func ManyGenerate[T any](body func(Sink[T]) error) Many[T] {
	return Many[T]{src: generateEmitter[T](body)}
}

// maybeSink forbids a second Emit, turning it into a protocol violation
// delivered as Error, per spec §4.9.
type maybeSink[T any] struct {
	inner   Sink[T]
	emitted bool
}

func (s *maybeSink[T]) Emit(item T) error {
	if s.emitted {
		return violation(KindItem, "second emit in a Maybe/Mono generator")
	}
	s.emitted = true
	return s.inner.Emit(item)
}

// MaybeGenerate returns a Maybe driven by body, which may call Emit at most
// once.
func MaybeGenerate[T any](body func(Sink[T]) error) Maybe[T] {
	return Maybe[T]{src: generateEmitter[T](func(raw Sink[T]) error {
		return body(&maybeSink[T]{inner: raw})
	})}
}

// MonoGenerate returns a Mono driven by body, which must call Emit exactly
// once before returning; zero emits is reported as Error just like a second
// one would be.
func MonoGenerate[T any](body func(Sink[T]) error) Mono[T] {
	return Mono[T]{src: generateEmitter[T](func(raw Sink[T]) error {
		ms := &maybeSink[T]{inner: raw}
		if err := body(ms); err != nil {
			return err
		}
		if !ms.emitted {
			return violation(KindComplete, "Mono generator returned without emitting")
		}
		return nil
	})}
}

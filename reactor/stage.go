package reactor

// genCore is the push-side base embedded by the empty, single, and iterable
// leaf generators and by the coroutine generator (Never needs no state and
// uses a no-op pipe instead): it owns the downstream receiver and the closed
// flag, and supplies the three shared emit helpers from spec §4.4. A
// generator is simultaneously a Pipe to its downstream (it has no
// upstream), so the embedding type still has to implement Request itself —
// production strategy is the one thing that differs per leaf.
type genCore[T any] struct {
	down   Receiver[T]
	closed bool
}

// emit forwards item downstream unless already closed, and reports whether
// the stage is still open afterwards so callers can short-circuit a loop
// the moment downstream closes mid-callback (re-entrancy, spec §5).
func (g *genCore[T]) emit(item T) bool {
	if g.closed {
		return false
	}
	g.down.Receive(item)
	return !g.closed
}

func (g *genCore[T]) emitComplete() {
	if g.closed {
		return
	}
	g.closed = true
	g.down.Complete()
}

func (g *genCore[T]) emitError(err error) {
	if g.closed {
		return
	}
	g.closed = true
	g.down.Error(err)
}

// Close marks the generator closed. Idempotent, as required of Pipe.Close.
func (g *genCore[T]) Close() {
	g.closed = true
}

// opCore is the shared base for an Operator (spec §4.4): simultaneously the
// downstream's Pipe and the upstream's Receiver. It owns the downstream
// receiver and the upstream Pipe reference acquired at Open.
type opCore[O any] struct {
	down   Receiver[O]
	up     Pipe
	closed bool
}

func (o *opCore[O]) emit(item O) bool {
	if o.closed {
		return false
	}
	o.down.Receive(item)
	return !o.closed
}

func (o *opCore[O]) emitComplete() {
	if o.closed {
		return
	}
	o.closed = true
	o.down.Complete()
}

func (o *opCore[O]) emitError(err error) {
	if o.closed {
		return
	}
	o.closed = true
	o.down.Error(err)
}

// take forwards demand upstream unless already closed.
func (o *opCore[O]) take(n int64) {
	if o.closed || o.up == nil {
		return
	}
	o.up.Request(n)
}

func (o *opCore[O]) takeAll() {
	if o.closed || o.up == nil {
		return
	}
	o.up.RequestAll()
}

// Close closes the operator and, per spec §4.4, must close the upstream
// pipe too.
func (o *opCore[O]) Close() {
	if o.closed {
		return
	}
	o.closed = true
	if o.up != nil {
		o.up.Close()
	}
}

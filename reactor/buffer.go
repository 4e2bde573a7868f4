package reactor

// BufferUnbounded, passed as the capacity to Many.Buffer, selects the
// unbounded variant of spec §4.7: request everything upstream at open and
// let downstream demand pace delivery. Mirrors the teacher's convention of
// a zero sentinel meaning "no limit" (see ConcurrencyUnlimited in the
// calque flow package this core descends from).
const BufferUnbounded = 0

type queuedKind int

const (
	queuedItem queuedKind = iota
	queuedComplete
	queuedError
)

// queued is one entry of a buffering operator's internal queue: either an
// item or a terminal signal. Terminals are queued too, per spec §4.7, so
// they're never delivered ahead of items already buffered in front of them.
type queued[T any] struct {
	kind queuedKind
	item T
	err  error
}

// bufferOp implements both the fixed-capacity and unbounded buffering
// operators from spec §4.7. capacity <= 0 selects the unbounded variant.
type bufferOp[T any] struct {
	opCore[T]
	capacity int
	queue    []queued[T]
	demand   RequestCount
	opts     options
}

// Open primes the queue before handing control to downstream: the capacity
// pull must reach upstream as a bare M (spec §4.7/C8), not M plus whatever
// downstream reentrantly requests once opened. Priming first means any
// items it pulls land in the (still demand-less) queue via Receive/enqueue,
// so by the time down.Open reenters through Request, len(queue) already
// reflects the primed items and the shortfall math in Request sees it.
func (b *bufferOp[T]) Open(p Pipe) {
	b.up = p
	if b.capacity <= 0 {
		p.RequestAll()
	} else {
		p.Request(int64(b.capacity))
	}
	b.down.Open(b)
}

func (b *bufferOp[T]) Receive(item T) { b.enqueue(queued[T]{kind: queuedItem, item: item}) }
func (b *bufferOp[T]) Complete()      { b.enqueue(queued[T]{kind: queuedComplete}) }
func (b *bufferOp[T]) Error(err error) {
	b.enqueue(queued[T]{kind: queuedError, err: err})
}

func (b *bufferOp[T]) enqueue(q queued[T]) {
	if b.closed {
		return
	}
	b.queue = append(b.queue, q)
	b.opts.diag.rec.BufferDepth("many", len(b.queue))
	b.drain()
}

// drain pops and dispatches while the queue is nonempty, demand remains for
// the head item, and the stage isn't closed. A popped terminal is
// dispatched and ends the drain immediately.
func (b *bufferOp[T]) drain() {
	for len(b.queue) > 0 && !b.closed {
		head := b.queue[0]
		if head.kind == queuedItem && !b.demand.Has(1) {
			return
		}
		b.queue = b.queue[1:]
		b.opts.diag.rec.BufferDepth("many", len(b.queue))
		switch head.kind {
		case queuedItem:
			b.demand.Withdraw(1)
			b.emit(head.item)
		case queuedComplete:
			b.emitComplete()
			return
		case queuedError:
			b.emitError(head.err)
			return
		}
	}
}

func (b *bufferOp[T]) Request(n int64) {
	if b.closed || n == 0 {
		return
	}
	b.demand.Request(n)

	if b.capacity <= 0 || n < 0 {
		b.up.RequestAll()
		b.drain()
		return
	}

	shortfall := int64(b.capacity) - int64(len(b.queue))
	if shortfall < 0 {
		shortfall = 0
	}
	b.up.Request(n + shortfall)
	b.drain()
}

func (b *bufferOp[T]) RequestAll() { b.Request(Infinite) }

// Close clears the queue in addition to the base Close's upstream forward,
// per spec §4.7: no item is delivered after close, buffered or not.
func (b *bufferOp[T]) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.queue = nil
	if b.up != nil {
		b.up.Close()
	}
}

func bufferEmitter[T any](src Emitter[T], capacity int, opts ...Option) Emitter[T] {
	return emitterFunc[T](func(r Receiver[T]) {
		op := &bufferOp[T]{capacity: capacity, opts: buildOptions(opts)}
		op.down = r
		src.Subscribe(op)
	})
}

// Buffer decouples upstream delivery from downstream demand by accumulating
// items in a fixed-capacity prefetch window: it primes the window with
// capacity at open, then tops up by (requested + shortfall) on every
// downstream Request. No item is ever dropped; capacity bounds the
// prefetch, not a discard threshold. opts, if given, wires diagnostics
// (§4.13); the violation policy they configure is unused here since a
// buffering operator never enforces an arity contract.
func (m Many[T]) Buffer(capacity int, opts ...Option) Many[T] {
	return Many[T]{src: bufferEmitter[T](m.src, capacity, opts...)}
}

// BufferUnbounded requests everything upstream immediately and relies
// entirely on downstream demand to pace delivery out of an unbounded queue.
func (m Many[T]) BufferUnbounded(opts ...Option) Many[T] {
	return m.Buffer(BufferUnbounded, opts...)
}

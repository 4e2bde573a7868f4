package reactor

import "github.com/google/uuid"

// ViolationPolicy selects what an arity-enforcing wrapper does when it
// detects an upstream contract breach (item after terminal, two terminals,
// item on Mute, item beyond Mono/Maybe's single-item budget, terminal
// before item for Mono).
type ViolationPolicy int

const (
	// Ignore silently swallows the offending signal and leaves the
	// wrapper's state unchanged. Default for the subscribe helpers.
	Ignore ViolationPolicy = iota
	// Delegate synthesizes a ViolationError and delivers it to the
	// delegate as an Error, then transitions to done, unless the
	// delegate is already done, in which case the signal is dropped.
	Delegate
	// Throw raises the violation on the calling goroutine by panicking
	// with the *ViolationError. Intended for debugging.
	Throw
)

// Option configures an arity-enforcing wrapper or buffering operator with
// optional diagnostics. The zero value of every wrapper uses no-op
// diagnostics and Ignore as its violation policy.
type Option func(*options)

type options struct {
	policy ViolationPolicy
	diag   diag
	// subID identifies this wrapper/operator instance in diagnostics output,
	// so log lines and traces from concurrently subscribed pipelines can be
	// told apart. Generated once per Wrap*/Buffer call, not per signal.
	subID string
}

func buildOptions(opts []Option) options {
	o := options{policy: Ignore, diag: defaultDiag(), subID: uuid.NewString()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPolicy sets the violation policy applied on contract breach.
func WithPolicy(p ViolationPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger reports protocol violations to l. Buffering operators accept
// it but never log.
func WithLogger(l DiagLogger) Option {
	return func(o *options) { o.diag.log = l }
}

// WithRecorder reports protocol violations and item/buffer counts to r.
func WithRecorder(r DiagRecorder) Option {
	return func(o *options) { o.diag.rec = r }
}

// violate reports a protocol breach and, per policy, may deliver a
// synthesized error to the delegate. isDone/markDone let each wrapper
// express its own state machine: violate only ever reads isDone() once and
// calls markDone() at most once, so a three-state machine (Mono/Maybe) and
// a two-state one (Mute/Many) both plug in without extra bookkeeping here.
func (o *options) violate(k Kind, reason string, isDone func() bool, markDone func(), deliver func(error)) {
	o.diag.log.Warn("reactor: protocol violation", "kind", k.String(), "reason", reason, "sub", o.subID)
	o.diag.rec.Violation(k)
	switch o.policy {
	case Ignore:
		// leave state untouched
	case Delegate:
		if !isDone() {
			markDone()
			deliver(violation(k, reason))
		}
	case Throw:
		panic(violation(k, reason))
	}
}

// --- Mute -------------------------------------------------------------

type muteWrapper struct {
	opts options
	recv MuteReceiver
	done bool
}

// WrapMute adapts r into the general Receiver[struct{}] contract, policing
// it per opts. It never delivers an Item, since Mute promises zero.
func WrapMute(r MuteReceiver, opts ...Option) Receiver[muteItem] {
	return &muteWrapper{opts: buildOptions(opts), recv: r}
}

func (w *muteWrapper) Open(p Pipe) { w.recv.Open(p) }

func (w *muteWrapper) isDone() bool { return w.done }
func (w *muteWrapper) markDone()    { w.done = true }

func (w *muteWrapper) Receive(muteItem) {
	w.opts.violate(KindItem, "item on Mute", w.isDone, w.markDone, w.recv.Error)
}

func (w *muteWrapper) Complete() {
	if w.done {
		w.opts.violate(KindComplete, "second terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.done = true
	w.recv.Complete()
}

func (w *muteWrapper) Error(err error) {
	if w.done {
		w.opts.violate(KindError, "signal after terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.done = true
	w.recv.Error(err)
}

// --- Mono ---------------------------------------------------------------

type monoState int

const (
	monoInit monoState = iota
	monoReceived
	monoDone
)

type monoWrapper[T any] struct {
	opts  options
	recv  MonoReceiver[T]
	state monoState
	item  T
}

// WrapMono adapts r into the general Receiver[T] contract for a stream
// promising exactly one item. The received item is buffered until the
// terminal signal arrives, then delivered combined via CompleteWith.
func WrapMono[T any](r MonoReceiver[T], opts ...Option) Receiver[T] {
	return &monoWrapper[T]{opts: buildOptions(opts), recv: r}
}

func (w *monoWrapper[T]) Open(p Pipe) { w.recv.Open(p) }

func (w *monoWrapper[T]) isDone() bool { return w.state == monoDone }
func (w *monoWrapper[T]) markDone()    { w.state = monoDone }

func (w *monoWrapper[T]) Receive(item T) {
	switch w.state {
	case monoInit:
		w.state = monoReceived
		w.item = item
		w.opts.diag.rec.ItemEmitted("mono")
	default:
		w.opts.violate(KindItem, "item beyond Mono's single-item budget", w.isDone, w.markDone, w.recv.Error)
	}
}

func (w *monoWrapper[T]) Complete() {
	switch w.state {
	case monoReceived:
		w.state = monoDone
		w.recv.CompleteWith(w.item)
	case monoInit:
		w.opts.violate(KindComplete, "complete before item for Mono", w.isDone, w.markDone, w.recv.Error)
	default:
		w.opts.violate(KindComplete, "second terminal", w.isDone, w.markDone, w.recv.Error)
	}
}

func (w *monoWrapper[T]) Error(err error) {
	if w.state == monoDone {
		w.opts.violate(KindError, "signal after terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.state = monoDone
	w.recv.Error(err)
}

// --- Maybe ----------------------------------------------------------------

type maybeState int

const (
	maybeInit maybeState = iota
	maybeReceived
	maybeDone
)

type maybeWrapper[T any] struct {
	opts  options
	recv  MaybeReceiver[T]
	state maybeState
	item  T
}

// WrapMaybe adapts r into the general Receiver[T] contract for a stream
// promising zero or one item.
func WrapMaybe[T any](r MaybeReceiver[T], opts ...Option) Receiver[T] {
	return &maybeWrapper[T]{opts: buildOptions(opts), recv: r}
}

func (w *maybeWrapper[T]) Open(p Pipe) { w.recv.Open(p) }

func (w *maybeWrapper[T]) isDone() bool { return w.state == maybeDone }
func (w *maybeWrapper[T]) markDone()    { w.state = maybeDone }

func (w *maybeWrapper[T]) Receive(item T) {
	switch w.state {
	case maybeInit:
		w.state = maybeReceived
		w.item = item
		w.opts.diag.rec.ItemEmitted("maybe")
	default:
		w.opts.violate(KindItem, "item beyond Maybe's single-item budget", w.isDone, w.markDone, w.recv.Error)
	}
}

func (w *maybeWrapper[T]) Complete() {
	switch w.state {
	case maybeInit:
		w.state = maybeDone
		w.recv.CompleteEmpty()
	case maybeReceived:
		w.state = maybeDone
		w.recv.CompleteWith(w.item)
	default:
		w.opts.violate(KindComplete, "second terminal", w.isDone, w.markDone, w.recv.Error)
	}
}

func (w *maybeWrapper[T]) Error(err error) {
	if w.state == maybeDone {
		w.opts.violate(KindError, "signal after terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.state = maybeDone
	w.recv.Error(err)
}

// --- Many -------------------------------------------------------------

type manyWrapper[T any] struct {
	opts options
	recv ManyReceiver[T]
	done bool
}

// WrapMany adapts r into the general Receiver[T] contract for an unbounded
// stream. This is the identity wrapper in practice: Many already is the
// general shape, so the only policing left is double-terminal detection.
func WrapMany[T any](r ManyReceiver[T], opts ...Option) Receiver[T] {
	return &manyWrapper[T]{opts: buildOptions(opts), recv: r}
}

func (w *manyWrapper[T]) Open(p Pipe) { w.recv.Open(p) }

func (w *manyWrapper[T]) isDone() bool { return w.done }
func (w *manyWrapper[T]) markDone()    { w.done = true }

func (w *manyWrapper[T]) Receive(item T) {
	if w.done {
		w.opts.violate(KindItem, "item after terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.opts.diag.rec.ItemEmitted("many")
	w.recv.Receive(item)
}

func (w *manyWrapper[T]) Complete() {
	if w.done {
		w.opts.violate(KindComplete, "second terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.done = true
	w.recv.Complete()
}

func (w *manyWrapper[T]) Error(err error) {
	if w.done {
		w.opts.violate(KindError, "signal after terminal", w.isDone, w.markDone, w.recv.Error)
		return
	}
	w.done = true
	w.recv.Error(err)
}

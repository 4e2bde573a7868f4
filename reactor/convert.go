package reactor

// This file implements the arity conversions of spec §4.10: widening, which
// reuses an underlying pipeline verbatim under a looser arity marker, and
// narrowing, which must synthesize or discard items to fit a stricter one.

// --- widening -------------------------------------------------------------
//
// Mono, Maybe, and Many already share the same element type and the same
// underlying Emitter[T]; widening between them is nothing more than
// swapping which marker wraps that Emitter. Mute is the odd one out: its
// underlying stream is typed Emitter[muteItem], so widening it needs a
// thin adapter that changes the element type without ever being asked to
// carry one.

type muteToTypedReceiver[T any] struct{ down Receiver[T] }

func (a muteToTypedReceiver[T]) Open(p Pipe)      { a.down.Open(p) }
func (a muteToTypedReceiver[T]) Receive(muteItem) {} // unreachable: Mute never emits an item
func (a muteToTypedReceiver[T]) Complete()        { a.down.Complete() }
func (a muteToTypedReceiver[T]) Error(err error)  { a.down.Error(err) }

func muteAsEmitter[T any](m Mute) Emitter[T] {
	return emitterFunc[T](func(r Receiver[T]) {
		m.src.Subscribe(muteToTypedReceiver[T]{down: r})
	})
}

// MuteToMaybe widens m to a Maybe that always completes empty.
func MuteToMaybe[T any](m Mute) Maybe[T] { return Maybe[T]{src: muteAsEmitter[T](m)} }

// MuteToMany widens m to a Many that always completes with zero items.
func MuteToMany[T any](m Mute) Many[T] { return Many[T]{src: muteAsEmitter[T](m)} }

// MonoToMaybe widens m to a Maybe that always delivers its one item.
func MonoToMaybe[T any](m Mono[T]) Maybe[T] { return Maybe[T]{src: m.src} }

// MonoToMany widens m to a Many that always delivers exactly its one item.
func MonoToMany[T any](m Mono[T]) Many[T] { return Many[T]{src: m.src} }

// MaybeToMany widens m to a Many that delivers zero or one item.
func MaybeToMany[T any](m Maybe[T]) Many[T] { return Many[T]{src: m.src} }

// --- narrowing --------------------------------------------------------------

// muteToMonoOp narrows a Mute to a Mono by synthesizing the single required
// item from completer at the moment the Mute source completes.
type muteToMonoOp[T any] struct {
	opCore[T]
	completer func() T
}

func (o *muteToMonoOp[T]) Open(p Pipe)      { o.up = p; o.down.Open(o) }
func (o *muteToMonoOp[T]) Receive(muteItem) {} // unreachable: Mute never emits an item

func (o *muteToMonoOp[T]) Complete() {
	if o.closed {
		return
	}
	if o.emit(o.completer()) {
		o.emitComplete()
	}
}

func (o *muteToMonoOp[T]) Error(err error) { o.emitError(err) }
func (o *muteToMonoOp[T]) Request(n int64) { o.take(n) }
func (o *muteToMonoOp[T]) RequestAll()     { o.takeAll() }

// MuteToMono narrows m to a Mono, calling completer to produce the item a
// Mono must deliver once m completes.
func MuteToMono[T any](m Mute, completer func() T) Mono[T] {
	return Mono[T]{src: emitterFunc[T](func(r Receiver[T]) {
		op := &muteToMonoOp[T]{completer: completer}
		op.down = r
		m.src.Subscribe(op)
	})}
}

// maybeToMonoOp narrows a Maybe to a Mono, calling absent to produce the
// item a Mono must deliver if the Maybe completed empty.
type maybeToMonoOp[T any] struct {
	opCore[T]
	absent func() T
	have   bool
	item   T
}

func (o *maybeToMonoOp[T]) Open(p Pipe) { o.up = p; o.down.Open(o) }

func (o *maybeToMonoOp[T]) Receive(item T) {
	o.have = true
	o.item = item
}

func (o *maybeToMonoOp[T]) Complete() {
	if o.closed {
		return
	}
	v := o.item
	if !o.have {
		v = o.absent()
	}
	if o.emit(v) {
		o.emitComplete()
	}
}

func (o *maybeToMonoOp[T]) Error(err error) { o.emitError(err) }
func (o *maybeToMonoOp[T]) Request(n int64) { o.take(n) }
func (o *maybeToMonoOp[T]) RequestAll()     { o.takeAll() }

// MaybeToMono narrows m to a Mono, calling absent to stand in for the item
// whenever m completes without ever delivering one.
func MaybeToMono[T any](m Maybe[T], absent func() T) Mono[T] {
	return Mono[T]{src: emitterFunc[T](func(r Receiver[T]) {
		op := &maybeToMonoOp[T]{absent: absent}
		op.down = r
		m.src.Subscribe(op)
	})}
}

// toMuteOp narrows any arity to a Mute by discarding every item and
// forwarding only the terminal signal.
type toMuteOp[T any] struct {
	opCore[muteItem]
}

func (o *toMuteOp[T]) Open(p Pipe)         { o.up = p; o.down.Open(o) }
func (o *toMuteOp[T]) Receive(T)           {} // discarded
func (o *toMuteOp[T]) Complete()           { o.emitComplete() }
func (o *toMuteOp[T]) Error(err error)     { o.emitError(err) }
func (o *toMuteOp[T]) Request(n int64)     { o.take(n) }
func (o *toMuteOp[T]) RequestAll()         { o.takeAll() }

func toMute[T any](src Emitter[T]) Mute {
	return Mute{src: emitterFunc[muteItem](func(r Receiver[muteItem]) {
		op := &toMuteOp[T]{}
		op.down = r
		src.Subscribe(op)
	})}
}

// MonoToMute narrows m to a Mute, discarding its one item.
func MonoToMute[T any](m Mono[T]) Mute { return toMute[T](m.src) }

// MaybeToMute narrows m to a Mute, discarding its item if any.
func MaybeToMute[T any](m Maybe[T]) Mute { return toMute[T](m.src) }

// ManyToMute narrows m to a Mute, discarding every item it delivers.
func ManyToMute[T any](m Many[T]) Mute { return toMute[T](m.src) }

package reactor

// mapOp is the Map operator (spec §4.8): a pure passthrough that applies f
// to each item. Terminal signals and demand pass through unchanged; an
// error from f is forwarded as Error and closes the stage. The arity marker
// is only a type-level tag, so this one implementation backs MapMono,
// MapMaybe, and MapMany alike.
type mapOp[I, O any] struct {
	opCore[O]
	f func(I) (O, error)
}

func (m *mapOp[I, O]) Open(p Pipe) {
	m.up = p
	m.down.Open(m)
}

func (m *mapOp[I, O]) Receive(item I) {
	out, err := m.f(item)
	if err != nil {
		m.emitError(err)
		return
	}
	m.emit(out)
}

func (m *mapOp[I, O]) Complete()        { m.emitComplete() }
func (m *mapOp[I, O]) Error(err error)  { m.emitError(err) }
func (m *mapOp[I, O]) Request(n int64)  { m.take(n) }
func (m *mapOp[I, O]) RequestAll()      { m.takeAll() }

func mapEmitter[I, O any](src Emitter[I], f func(I) (O, error)) Emitter[O] {
	return emitterFunc[O](func(r Receiver[O]) {
		op := &mapOp[I, O]{f: f}
		op.down = r
		src.Subscribe(op)
	})
}

// MapMono applies f to the single item Mono[I] promises to deliver.
func MapMono[I, O any](src Mono[I], f func(I) (O, error)) Mono[O] {
	return Mono[O]{src: mapEmitter[I, O](src.src, f)}
}

// MapMaybe applies f to the item Maybe[I] may deliver.
func MapMaybe[I, O any](src Maybe[I], f func(I) (O, error)) Maybe[O] {
	return Maybe[O]{src: mapEmitter[I, O](src.src, f)}
}

// MapMany applies f to every item Many[I] delivers.
func MapMany[I, O any](src Many[I], f func(I) (O, error)) Many[O] {
	return Many[O]{src: mapEmitter[I, O](src.src, f)}
}

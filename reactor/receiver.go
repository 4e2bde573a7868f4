package reactor

// Receiver is the general sink: the union of every arity-specific callback.
// It is the adapter target for any arity — every arity-enforcing wrapper
// produces a Receiver[T] from a specialized receiver, and the
// generator/operator machinery is written entirely in terms of Receiver[T],
// never the specialized interfaces.
type Receiver[T any] interface {
	Open(p Pipe)
	Receive(item T)
	Complete()
	Error(err error)
}

// MuteReceiver consumes a Mute stream: no items are ever possible, only a
// terminal signal.
type MuteReceiver interface {
	Open(p Pipe)
	Complete()
	Error(err error)
}

// MonoReceiver consumes a Mono[T] stream: exactly one item, delivered
// together with completion.
type MonoReceiver[T any] interface {
	Open(p Pipe)
	CompleteWith(item T)
	Error(err error)
}

// MaybeReceiver consumes a Maybe[T] stream: at most one item.
type MaybeReceiver[T any] interface {
	Open(p Pipe)
	CompleteWith(item T)
	CompleteEmpty()
	Error(err error)
}

// ManyReceiver consumes a Many[T] stream: any number of items followed by at
// most one terminal.
type ManyReceiver[T any] interface {
	Open(p Pipe)
	Receive(item T)
	Complete()
	Error(err error)
}

// AutoOpen is embeddable in a specialized receiver to supply the default
// Open behavior spec'd for every arity: request infinite demand immediately.
// Embed it and only implement the callbacks you care about.
type AutoOpen struct{}

// Open requests all remaining demand.
func (AutoOpen) Open(p Pipe) { p.RequestAll() }

// Package reactor implements a reactive dataflow core: a small protocol for
// composing asynchronous producers and consumers of values with explicit
// demand-driven flow control (backpressure), deterministic termination
// signaling, and arity-typed stream contracts.
//
// The package is deliberately not a scheduler, event loop, or I/O layer. It
// supplies the protocol by which an Emitter and a Receiver coordinate through
// a Pipe: Open exactly once, zero or more Items bounded by outstanding
// demand, then at most one terminal signal (Complete or Error).
//
// Four arity markers narrow that general contract to a promised maximum item
// count: Mute (0), Mono (exactly 1), Maybe (0 or 1), Many (0..N). Each has a
// specialized receiver interface; the arity-enforcing wrappers in wrapper.go
// adapt a specialized receiver into the general Receiver contract while
// policing it against upstream misbehavior.
//
// Execution is entirely caller-driven and single-threaded per subscription:
// every Pipe and Receiver method runs synchronously on the caller's
// goroutine, except inside a coroutine-driven generator (see ManyGenerate),
// whose suspend points are the only place a second goroutine is involved,
// and even there only one of the two goroutines ever runs at a time.
package reactor

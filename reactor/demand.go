package reactor

import "math"

// Infinite is the sentinel passed to RequestCount.Request to mean "all
// remaining items, forever". It latches: once set, the register never goes
// back to a finite count.
const Infinite int64 = -1

// maxRequestCount is the saturating bound for finite demand. Request(n)
// with n >= 0 adds to the running total; if that addition could overflow,
// the register saturates here instead of wrapping.
const maxRequestCount int64 = math.MaxInt64 / 2

// RequestCount is the demand accounting register described in spec §4.6: a
// single signed counter that is either infinite or a non-negative, monotonic
// (until withdrawn) count of authorized-but-undelivered items. Every
// operator and generator that mediates backpressure owns exactly one of
// these; it is not safe for concurrent use (the core is single-threaded per
// subscription by design, see spec §5).
type RequestCount struct {
	count int64
	inf   bool
}

// Request adds n to the outstanding demand. n < 0 latches infinite demand,
// stickily: subsequent finite Request calls are then no-ops. n == 0 is an
// explicit no-op. Positive n saturates at maxRequestCount rather than
// wrapping on overflow.
func (r *RequestCount) Request(n int64) {
	if n < 0 {
		r.inf = true
		return
	}
	if n == 0 || r.inf {
		return
	}
	if n > maxRequestCount-r.count {
		r.count = maxRequestCount
		return
	}
	r.count += n
}

// Has reports whether the register currently authorizes at least k more
// items (true unconditionally when infinite).
func (r *RequestCount) Has(k int64) bool {
	return r.inf || r.count >= k
}

// Infinite reports whether the register has latched infinite demand.
func (r *RequestCount) Infinite() bool {
	return r.inf
}

// Withdraw consumes up to k units of demand, clamped to what's actually
// outstanding, and returns the amount actually withdrawn. In infinite mode
// the register never decrements and Withdraw always reports k as withdrawn.
func (r *RequestCount) Withdraw(k int64) int64 {
	if r.inf {
		return k
	}
	if k > r.count {
		k = r.count
	}
	r.count -= k
	return k
}

// Remaining reports the currently outstanding finite count, or -1 if
// infinite. Primarily useful for diagnostics and tests.
func (r *RequestCount) Remaining() int64 {
	if r.inf {
		return Infinite
	}
	return r.count
}

package rmetrics

import (
	"sync"

	"github.com/fluxcore/reactor/reactor"
)

// InMemoryRecorder stores counts in memory instead of exporting to
// Prometheus, for use in tests that want to assert on diagnostics without
// scraping an HTTP endpoint.
type InMemoryRecorder struct {
	mu          sync.Mutex
	items       map[string]int
	violations  map[reactor.Kind]int
	bufferDepth map[string]int
}

// NewInMemoryRecorder returns an empty InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{
		items:       make(map[string]int),
		violations:  make(map[reactor.Kind]int),
		bufferDepth: make(map[string]int),
	}
}

func (r *InMemoryRecorder) ItemEmitted(arity string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[arity]++
}

func (r *InMemoryRecorder) Violation(kind reactor.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations[kind]++
}

func (r *InMemoryRecorder) BufferDepth(arity string, depth int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bufferDepth[arity] = depth
}

// Items reports how many times ItemEmitted(arity) was called.
func (r *InMemoryRecorder) Items(arity string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[arity]
}

// Violations reports how many times Violation(kind) was called.
func (r *InMemoryRecorder) Violations(kind reactor.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.violations[kind]
}

// BufferDepthOf reports the last depth recorded for arity.
func (r *InMemoryRecorder) BufferDepthOf(arity string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bufferDepth[arity]
}

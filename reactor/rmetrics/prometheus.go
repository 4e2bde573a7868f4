// Package rmetrics is the optional Prometheus-backed metrics adapter for
// reactor's diagnostics seam (reactor.DiagRecorder). The core package never
// imports rmetrics; a *Recorder satisfies DiagRecorder structurally, so
// wiring one in is a matter of passing it to reactor.WithRecorder.
package rmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fluxcore/reactor/reactor"
)

// Recorder implements reactor.DiagRecorder with three fixed metrics: a
// per-arity item counter, a per-violation-kind counter, and a per-arity
// buffer depth gauge. Unlike the teacher's dynamic getOrCreate registries
// (one Prometheus metric per metric *name*), this diagnostics seam only
// ever reports these three shapes, so the vectors are created once, at
// construction, and labeled rather than looked up by name.
type Recorder struct {
	registry     *prometheus.Registry
	itemsEmitted *prometheus.CounterVec
	violations   *prometheus.CounterVec
	bufferDepth  *prometheus.GaugeVec
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithRegistry uses an existing Prometheus registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(r *Recorder) { r.registry = registry }
}

// NewRecorder builds a Recorder. By default it creates its own registry and
// registers the Go runtime and process collectors alongside the three
// reactor metrics.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	for _, opt := range opts {
		opt(r)
	}

	r.itemsEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reactor_items_emitted_total",
		Help: "Items delivered downstream, by arity.",
	}, []string{"arity"})
	r.violations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reactor_protocol_violations_total",
		Help: "Protocol violations observed by arity-enforcing wrappers, by signal kind.",
	}, []string{"kind"})
	r.bufferDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "reactor_buffer_depth",
		Help: "Current queue depth of a buffering operator, by arity.",
	}, []string{"arity"})

	r.registry.MustRegister(r.itemsEmitted, r.violations, r.bufferDepth)
	r.registry.MustRegister(collectors.NewGoCollector())
	r.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return r
}

func (r *Recorder) ItemEmitted(arity string) {
	r.itemsEmitted.WithLabelValues(arity).Inc()
}

func (r *Recorder) Violation(kind reactor.Kind) {
	r.violations.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) BufferDepth(arity string, depth int) {
	r.bufferDepth.WithLabelValues(arity).Set(float64(depth))
}

// Handler returns an HTTP handler for Prometheus to scrape.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

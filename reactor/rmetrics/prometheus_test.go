package rmetrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fluxcore/reactor/reactor"
)

func TestRecorder_ItemEmitted(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ItemEmitted("many")
	r.ItemEmitted("many")
	r.ItemEmitted("mono")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `reactor_items_emitted_total{arity="many"} 2`) {
		t.Errorf("expected many=2 in output:\n%s", body)
	}
	if !strings.Contains(body, `reactor_items_emitted_total{arity="mono"} 1`) {
		t.Errorf("expected mono=1 in output:\n%s", body)
	}
}

func TestRecorder_Violation(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Violation(reactor.KindItem)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `reactor_protocol_violations_total{kind="item"} 1`) {
		t.Errorf("expected violation count in output:\n%s", rec.Body.String())
	}
}

func TestRecorder_BufferDepth(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.BufferDepth("many", 4)
	r.BufferDepth("many", 2)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	// Gauge: only the latest value should be visible.
	if !strings.Contains(rec.Body.String(), `reactor_buffer_depth{arity="many"} 2`) {
		t.Errorf("expected latest buffer depth in output:\n%s", rec.Body.String())
	}
}

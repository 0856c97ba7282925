package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func TestIsHealthRequestLog(t *testing.T) {
	if !isHealthRequestLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if isHealthRequestLog("http request", []any{"method", "GET", "path", "/v1/fixtures/today"}) {
		t.Fatalf("did not expect api request log to be skipped")
	}
	if isHealthRequestLog("fixture refresh", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestMirrorAttributes(t *testing.T) {
	attrs := mirrorAttributes([]any{"cache_date", "2026-03-14", "api_calls", 1, "detail"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "cache_date" || attrs[0].Value.AsString() != "2026-03-14" {
		t.Fatalf("unexpected cache_date attribute")
	}
	if attrs[1].Key != "api_calls" || attrs[1].Value.AsInt64() != 1 {
		t.Fatalf("unexpected api_calls attribute")
	}
	if attrs[2].Key != "detail" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestMirrorValue(t *testing.T) {
	if v := mirrorValue(errors.New("upstream timeout")); v.AsString() != "upstream timeout" {
		t.Fatalf("unexpected error value: %v", v)
	}
	if v := mirrorValue(1500 * time.Millisecond); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value: %v", v)
	}
	if v := mirrorValue(true); !v.AsBool() {
		t.Fatalf("unexpected bool value: %v", v)
	}
}

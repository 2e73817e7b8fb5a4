package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vaillant_bridge/internal/service"
)

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	id := w.Header().Get(requestIDHeader)
	if id == "" {
		t.Fatalf("expected a generated %s header", requestIDHeader)
	}
}

func TestRequestID_CallerValuePreserved(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "caller-supplied-id")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "caller-supplied-id" {
		t.Fatalf("expected caller id to be echoed, got %q", got)
	}
}

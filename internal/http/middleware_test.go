package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/webstack-demo/internal/http/handlers"
)

func TestRecoverPanic_WritesStructured500(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("repository exploded")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	recoverPanic(false)(panicking).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp handlers.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Success {
		t.Error("expected success false")
	}
	if resp.Error == "" {
		t.Error("expected a human-readable error message")
	}
	if resp.Detail != "repository exploded" {
		t.Errorf("expected the panic value as detail outside production, got %q", resp.Detail)
	}
}

func TestRecoverPanic_HidesDetailInProduction(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("repository exploded")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	recoverPanic(true)(panicking).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp handlers.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Detail != "" {
		t.Errorf("expected no detail in production, got %q", resp.Detail)
	}
}

func TestRecoverPanic_PassesThroughNormally(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recoverPanic(false)(ok).ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("expected the wrapped handler's status, got %d", w.Code)
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	requestLogger(ok).ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected the wrapped handler's status, got %d", w.Code)
	}
}

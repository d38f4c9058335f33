package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/janisto/hello-backend/internal/service/backend"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestFrontendHealth(t *testing.T) {
	h := newHandler(backend.NewClient(nil, "http://127.0.0.1:1"))

	resp := get(t, h, "/health")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	want := `{"status":"healthy","service":"frontend"}`
	if got := strings.TrimSpace(resp.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestFrontendProxiesBackendData(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Hello from Flask Backend!","environment":"production"}`))
	}))
	defer upstream.Close()

	h := newHandler(backend.NewClient(upstream.Client(), upstream.URL))
	resp := get(t, h, "/api/data")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	want := `{"message":"Hello from Flask Backend!","environment":"production"}`
	if got := strings.TrimSpace(resp.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header, got %q", got)
	}
}

func TestFrontendReportsBackendFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	h := newHandler(backend.NewClient(upstream.Client(), upstream.URL))
	resp := get(t, h, "/api/data")

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	want := `{"error":"Failed to fetch data from backend"}`
	if got := strings.TrimSpace(resp.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestFrontendUnknownRoute(t *testing.T) {
	h := newHandler(backend.NewClient(nil, "http://127.0.0.1:1"))
	if resp := get(t, h, "/api/health"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFetchData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected Accept header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Hello from Flask Backend!","environment":"staging"}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.Client(), srv.URL).FetchData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Data{Message: "Hello from Flask Backend!", Environment: "staging"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchDataNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.Client(), srv.URL).FetchData(context.Background())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Status != http.StatusBadGateway {
		t.Fatalf("expected UpstreamError with status 502, got %v", err)
	}
}

func TestFetchDataInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.Client(), srv.URL).FetchData(context.Background())
	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Status != http.StatusOK {
		t.Fatalf("expected UpstreamError with status 200, got %v", err)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchDataUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(nil, url).FetchData(context.Background())
	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Status != 0 {
		t.Fatalf("expected UpstreamError without status, got %v", err)
	}
}

func TestFetchDataHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.Client(), srv.URL).FetchData(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	if got := (&UpstreamError{Status: 503}).Error(); got != "backend upstream error (status=503)" {
		t.Fatalf("unexpected message: %s", got)
	}
	err := &UpstreamError{cause: errors.New("dial failed")}
	if got := err.Error(); got != "backend upstream error (status=0): dial failed" {
		t.Fatalf("unexpected message: %s", got)
	}
}

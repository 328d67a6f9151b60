package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestAvailableOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := New(0, zap.NewNop())
	if !p.Available(context.Background(), Service{Name: "test", URL: srv.URL, AcceptStatus: StatusOK}) {
		t.Error("expected service to be available")
	}
}

func TestAvailableRejectsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := New(0, zap.NewNop())
	svc := Service{Name: "strict", URL: srv.URL, AcceptStatus: StatusOK}
	if p.Available(context.Background(), svc) {
		t.Error("404 must not count as available under StatusOK")
	}

	// The same answer passes the lenient heuristic.
	svc.AcceptStatus = NotServerError
	if !p.Available(context.Background(), svc) {
		t.Error("404 should count as available under NotServerError")
	}
}

func TestAvailableServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := New(0, zap.NewNop())
	if p.Available(context.Background(), Service{Name: "down", URL: srv.URL, AcceptStatus: NotServerError}) {
		t.Error("5xx must never count as available")
	}
}

func TestAvailableConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := New(time.Second, zap.NewNop())
	if p.Available(context.Background(), Service{Name: "gone", URL: url}) {
		t.Error("closed server must not be available")
	}
}

func TestAvailableTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	p := New(50*time.Millisecond, zap.NewNop())
	if p.Available(context.Background(), Service{Name: "slow", URL: srv.URL, AcceptStatus: StatusOK}) {
		t.Error("timed-out probe must report unavailable")
	}
}

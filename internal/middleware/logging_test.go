package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	var seenID string
	handler := WithRequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets", nil))

	if seenID == "" {
		t.Error("handler did not receive a request ID")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seenID {
		t.Errorf("X-Request-Id = %q; want %q", got, seenID)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries; want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("logged status = %v; want %d", fields["status"], http.StatusTeapot)
	}
	if fields["path"] != "/api/presets" {
		t.Errorf("logged path = %v", fields["path"])
	}
	if fields["request_id"] != seenID {
		t.Errorf("logged request_id = %v; want %q", fields["request_id"], seenID)
	}
}

func TestGetRequestIDFromContextMissing(t *testing.T) {
	if got := GetRequestIDFromContext(context.Background()); got != "" {
		t.Errorf("GetRequestIDFromContext on empty context = %q; want empty", got)
	}
}

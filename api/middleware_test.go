package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLog_AssignsRequestID(t *testing.T) {
	mw := RequestLogMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/timeslots", nil))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated request id header")
	}
	if rr.Code != http.StatusNoContent {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestRequestLog_PreservesCallerRequestID(t *testing.T) {
	mw := RequestLogMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/timeslots", nil)
	req.Header.Set("X-Request-Id", "caller-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "caller-id" {
		t.Errorf("request id = %q, want caller-id", got)
	}
}

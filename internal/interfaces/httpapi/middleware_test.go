package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
)

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := recoverPanic(logging.NewNop(), next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Fatalf("panic value leaked into response: %s", rec.Body.String())
	}
}

func TestRequestLogging_LogsRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelInfo)

	mux := http.NewServeMux()
	handle(mux, "GET /test/{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := RequestID(RequestLogging(logger, nil, mux))

	req := httptest.NewRequest(http.MethodGet, "/test/", nil)
	req.Header.Set(requestIDHeader, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "http request" {
		t.Fatalf("unexpected message: %v", entry["msg"])
	}
	if entry["route"] != "GET /test/{$}" {
		t.Fatalf("unexpected route: %v", entry["route"])
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Fatalf("unexpected status: %v", entry["status"])
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("unexpected request id: %v", entry["request_id"])
	}
}

func TestRequestID_RejectsOversizedHeader(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test/", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("a", 200))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen == "" || len(seen) > 128 {
		t.Fatalf("expected a generated request id, got %q", seen)
	}
}

package httpapi

import "testing"

func TestShouldTraceRequest_OperationalPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", "/metrics", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/get_roster_data/", "/get_freeagent_data/", "/test/", "/", "/docs"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

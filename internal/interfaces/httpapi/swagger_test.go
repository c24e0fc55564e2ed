package httpapi

import (
	"net/http"
	"testing"

	sonic "github.com/bytedance/sonic"
	leaguemock "github.com/riskibarqy/fantasy-basketball-proxy/internal/mocks/domain/league"
)

func TestOpenAPIJSON_ConvertsEmbeddedSpec(t *testing.T) {
	router := newTestRouter(t, leaguemock.NewProvider(t), RouterOptions{SwaggerEnabled: true})

	rec := serve(router, http.MethodGet, "/openapi.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var doc map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal openapi json: %v", err)
	}
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatalf("expected paths object, got %T", doc["paths"])
	}
	for _, path := range []string{"/get_roster_data/", "/get_freeagent_data/", "/test/"} {
		if _, ok := paths[path]; !ok {
			t.Fatalf("expected path %s in openapi document", path)
		}
	}
}

func TestDocsRoutesDisabled(t *testing.T) {
	router := newTestRouter(t, leaguemock.NewProvider(t), RouterOptions{})

	for _, path := range []string{"/openapi.yaml", "/openapi.json", "/docs"} {
		if rec := serve(router, http.MethodGet, path, ""); rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 with docs disabled, got %d", path, rec.Code)
		}
	}
}

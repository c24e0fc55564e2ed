package httpapi

import (
	_ "embed"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISpec []byte

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(openAPISpec)
}

func (h *Handler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenAPIJSON")
	defer span.End()

	raw, err := h.openAPIJSON()
	if err != nil {
		h.logger.ErrorContext(ctx, "convert openapi spec failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

// convertOpenAPISpec renders the embedded YAML document as JSON.
func convertOpenAPISpec() ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(openAPISpec, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi yaml: %w", err)
	}
	raw, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi json: %w", err)
	}
	return raw, nil
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerHTML))
}

const swaggerHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Fantasy Basketball Proxy API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>
      html, body { margin: 0; padding: 0; }
      #swagger-ui { max-width: 1200px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
      });
    </script>
  </body>
</html>`

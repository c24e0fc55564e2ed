package httpapi

import "net/http"

func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, withRoute(pattern, h))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	handle(mux, "GET /healthz", handler.Healthz)
	handle(mux, "GET /test/{$}", handler.Test)
	handle(mux, "GET /test", handler.Test)

	if opts.MetricsEnabled && opts.Metrics != nil {
		handle(mux, "GET /metrics", opts.Metrics.Handler().ServeHTTP)
	}
	if !opts.SwaggerEnabled {
		return
	}

	handle(mux, "GET /openapi.yaml", handler.OpenAPI)
	handle(mux, "GET /openapi.json", handler.OpenAPIJSON)
	handle(mux, "GET /docs", handler.SwaggerUI)
	handle(mux, "GET /docs/", handler.SwaggerUI)
}

func registerPlayerDataRoutes(mux *http.ServeMux, handler *Handler) {
	handle(mux, "POST /get_roster_data/{$}", handler.GetRosterData)
	handle(mux, "POST /get_roster_data", handler.GetRosterData)
	handle(mux, "POST /get_freeagent_data/{$}", handler.GetFreeAgentData)
	handle(mux, "POST /get_freeagent_data", handler.GetFreeAgentData)
}

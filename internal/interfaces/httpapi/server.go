package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/metrics"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
)

type RouterOptions struct {
	Logger             *logging.Logger
	Metrics            *metrics.Recorder
	SwaggerEnabled     bool
	MetricsEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts)
	registerPlayerDataRoutes(mux, handler)

	return RequestTracing(RequestID(RequestLogging(logger, opts.Metrics, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

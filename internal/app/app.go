package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-basketball-proxy/external/espn"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/config"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/metrics"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	recorder := metrics.NewRecorder()

	espnClient := espn.NewClient(espn.ClientConfig{
		BaseURL: cfg.ESPNBaseURL,
		Timeout: cfg.ESPNTimeout,
		Logger:  logger,
		Metrics: recorder,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	playerDataSvc := usecase.NewPlayerDataService(espnClient, logger)

	handler := httpapi.NewHandler(playerDataSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		Logger:             logger,
		Metrics:            recorder,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		MetricsEnabled:     cfg.MetricsEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

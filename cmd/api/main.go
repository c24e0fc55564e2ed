package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/app"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/config"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/observability"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof", "error", err)
		os.Exit(1)
	}

	srv, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}
	if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
		logger.Error("pprof shutdown failed", "error", err)
	}
	if err := stopProfiler(); err != nil {
		logger.Error("pyroscope shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("uptrace shutdown failed", "error", err)
	}

	logger.Info("http server stopped")
	if exitCode != 0 {
		_ = logger.Sync()
		os.Exit(exitCode)
	}
}

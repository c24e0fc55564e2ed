package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_HTTP_ADDR", "")
	t.Setenv("ESPN_BASE_URL", "")
	t.Setenv("ESPN_TIMEOUT", "")
	t.Setenv("ESPN_CIRCUIT_ENABLED", "")
	t.Setenv("METRICS_ENABLED", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ESPNBaseURL != "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba" {
		t.Fatalf("unexpected ESPNBaseURL: %q", cfg.ESPNBaseURL)
	}
	if cfg.ESPNTimeout != 20*time.Second {
		t.Fatalf("unexpected ESPNTimeout: %s", cfg.ESPNTimeout)
	}
	if cfg.ESPNCircuitEnabled {
		t.Fatalf("expected circuit breaker to be disabled by default")
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics to be enabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_ESPNCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("valid", func(t *testing.T) {
		t.Setenv("ESPN_CIRCUIT_ENABLED", "true")
		t.Setenv("ESPN_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("ESPN_CIRCUIT_OPEN_TIMEOUT", "30s")
		t.Setenv("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.ESPNCircuitEnabled || cfg.ESPNCircuitFailureCount != 3 ||
			cfg.ESPNCircuitOpenTimeout != 30*time.Second || cfg.ESPNCircuitHalfOpenMaxReq != 1 {
			t.Fatalf("unexpected circuit config: %+v", cfg)
		}
	})

	t.Run("zero failure count", func(t *testing.T) {
		t.Setenv("ESPN_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for ESPN_CIRCUIT_FAILURE_COUNT=0")
		}
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("ESPN_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("ESPN_TIMEOUT", "-1s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative ESPN_TIMEOUT")
		}
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("ESPN_TIMEOUT", "")
		t.Setenv("ESPN_CIRCUIT_ENABLED", "sometimes")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid ESPN_CIRCUIT_ENABLED")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fantasy-basketball-proxy-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fantasy-basketball-proxy-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty CORS origin list")
		}
	})
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	SwaggerEnabled             bool
	MetricsEnabled             bool
	ESPNBaseURL                string
	ESPNTimeout                time.Duration
	ESPNCircuitEnabled         bool
	ESPNCircuitFailureCount    int
	ESPNCircuitOpenTimeout     time.Duration
	ESPNCircuitHalfOpenMaxReq  int
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	// Covers the provider round trips of one request.
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "45s")
	if err != nil {
		return Config{}, err
	}

	espnTimeout, err := getEnvAsDuration("ESPN_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}
	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if espnCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	espnCircuitOpenTimeout, err := getEnvAsDuration("ESPN_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	espnCircuitHalfOpenMaxReq, err := getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if espnCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "fantasy-basketball-proxy"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8000"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:             swaggerEnabled,
		MetricsEnabled:             metricsEnabled,
		ESPNBaseURL:                strings.TrimSpace(getEnv("ESPN_BASE_URL", "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba")),
		ESPNTimeout:                espnTimeout,
		ESPNCircuitEnabled:         espnCircuitEnabled,
		ESPNCircuitFailureCount:    espnCircuitFailureCount,
		ESPNCircuitOpenTimeout:     espnCircuitOpenTimeout,
		ESPNCircuitHalfOpenMaxReq:  espnCircuitHalfOpenMaxReq,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if cfg.ESPNBaseURL == "" {
		return Config{}, fmt.Errorf("ESPN_BASE_URL cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// getEnvAsDuration parses a positive duration.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

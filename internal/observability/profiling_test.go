package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-basketball-proxy/internal/config"
	"github.com/riskibarqy/fantasy-basketball-proxy/internal/platform/logging"
)

func TestStartPprofServer_DisabledReturnsNil(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected nil server when pprof is disabled")
	}
	if err := StopPprofServer(srv, nil, time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rr := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

func TestInitPyroscope_DisabledReturnsNoopStop(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	cfg := config.Config{
		AppEnv:                 config.EnvStage,
		ServiceName:            "fantasy-basketball-proxy",
		ServiceVersion:         "1.2.3",
		PyroscopeAppName:       "fbp",
		PyroscopeServerAddress: "http://localhost:4040",
		PyroscopeUploadRate:    15 * time.Second,
	}

	got := pyroscopeConfig(cfg)
	if got.ApplicationName != "fbp" || got.ServerAddress != "http://localhost:4040" {
		t.Fatalf("unexpected pyroscope target: %+v", got)
	}
	if got.Tags["env"] != config.EnvStage || got.Tags["version"] != "1.2.3" {
		t.Fatalf("unexpected pyroscope tags: %+v", got.Tags)
	}
	if got.UploadRate != 15*time.Second {
		t.Fatalf("unexpected upload rate: %s", got.UploadRate)
	}
}

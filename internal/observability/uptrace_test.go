package observability

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-board/internal/config"
	"github.com/riskibarqy/fixture-board/internal/platform/logging"
)

func disabledConfig() config.Config {
	return config.Config{
		ServiceName:    "fixture-board",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}
}

func TestInitUptrace_Disabled(t *testing.T) {
	shutdown, err := InitUptrace(disabledConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := disabledConfig()
	cfg.UptraceEnabled = true

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(disabledConfig(), nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(disabledConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := StopPprofServer(srv, nil, time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

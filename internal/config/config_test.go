package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fixture-board/internal/platform/logging"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APISPORTS_KEY", "test-key")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APISPORTS_KEY", "  ")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APISPORTS_KEY is empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)
	for _, key := range []string{
		"APISPORTS_BASE_URL", "APISPORTS_TIMEOUT", "FIXTURES_LEAGUE_ID", "FIXTURES_SEASON",
		"FIXTURES_LOOKAHEAD_DAYS", "FIXTURES_TIMEZONE", "FIXTURES_PAGE_TITLE", "APP_HTTP_ADDR",
		"APP_WRITE_TIMEOUT", "APP_LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "PPROF_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APISportsBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected base url: %q", cfg.APISportsBaseURL)
	}
	if cfg.APISportsKey != "test-key" {
		t.Fatalf("unexpected api key")
	}
	if cfg.APISportsTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.APISportsTimeout)
	}
	if cfg.FixturesLeagueID != 39 {
		t.Fatalf("unexpected league id: %d", cfg.FixturesLeagueID)
	}
	if cfg.FixturesSeason != 2026 {
		t.Fatalf("unexpected season: %d", cfg.FixturesSeason)
	}
	if cfg.FixturesLookaheadDays != 2 {
		t.Fatalf("unexpected lookahead: %d", cfg.FixturesLookaheadDays)
	}
	if cfg.FixturesLocation != time.Local {
		t.Fatalf("expected local timezone by default, got %v", cfg.FixturesLocation)
	}
	if cfg.FixturesPageTitle != "Upcoming Premier League fixtures" {
		t.Fatalf("unexpected page title: %q", cfg.FixturesPageTitle)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("unexpected pprof addr: %q", cfg.PprofAddr)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_FixtureOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FIXTURES_LEAGUE_ID", "140")
	t.Setenv("FIXTURES_SEASON", "2025")
	t.Setenv("FIXTURES_LOOKAHEAD_DAYS", "0")
	t.Setenv("FIXTURES_TIMEZONE", "UTC")
	t.Setenv("APISPORTS_TIMEOUT", "5s")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FixturesLeagueID != 140 || cfg.FixturesSeason != 2025 || cfg.FixturesLookaheadDays != 0 {
		t.Fatalf("unexpected fixture settings: league=%d season=%d lookahead=%d", cfg.FixturesLeagueID, cfg.FixturesSeason, cfg.FixturesLookaheadDays)
	}
	if cfg.FixturesLocation != time.UTC {
		t.Fatalf("unexpected location: %v", cfg.FixturesLocation)
	}
	if cfg.APISportsTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.APISportsTimeout)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_InvalidFixtureSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "league not a number", key: "FIXTURES_LEAGUE_ID", value: "premier"},
		{name: "league zero", key: "FIXTURES_LEAGUE_ID", value: "0"},
		{name: "season negative", key: "FIXTURES_SEASON", value: "-1"},
		{name: "lookahead negative", key: "FIXTURES_LOOKAHEAD_DAYS", value: "-2"},
		{name: "timezone unknown", key: "FIXTURES_TIMEZONE", value: "Mars/Olympus"},
		{name: "timeout invalid", key: "APISPORTS_TIMEOUT", value: "soon"},
		{name: "timeout zero", key: "APISPORTS_TIMEOUT", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_WriteTimeoutMustOutlastProviderTimeout(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APISPORTS_TIMEOUT", "10s")
	t.Setenv("APP_WRITE_TIMEOUT", "10s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_WRITE_TIMEOUT <= APISPORTS_TIMEOUT")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_SERVICE_NAME", "fixture-board-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fixture-board-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.example.com" || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

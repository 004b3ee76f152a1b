package config

import (
	"testing"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_FeedRequiresTokenWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_ENABLED", "true")
	t.Setenv("FEED_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FEED_ENABLED=true without FEED_TOKEN")
	}
}

func TestLoad_FeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEED_ENABLED", "true")
	t.Setenv("FEED_TOKEN", "feed-token-123")
	t.Setenv("FEED_BASE_URL", "https://feed.example.com/v2")
	t.Setenv("FEED_TIMEOUT", "8s")
	t.Setenv("FEED_MAX_RETRIES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FeedEnabled {
		t.Fatalf("expected FeedEnabled=true")
	}
	if cfg.FeedBaseURL != "https://feed.example.com/v2" {
		t.Fatalf("unexpected FeedBaseURL: %q", cfg.FeedBaseURL)
	}
	if cfg.FeedToken != "feed-token-123" {
		t.Fatalf("unexpected FeedToken")
	}
	if cfg.FeedTimeout != 8*time.Second {
		t.Fatalf("unexpected FeedTimeout: %s", cfg.FeedTimeout)
	}
	if cfg.FeedMaxRetries != 3 {
		t.Fatalf("unexpected FeedMaxRetries: %d", cfg.FeedMaxRetries)
	}
}

func TestLoad_SweeperDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SweepEnabled {
		t.Fatalf("expected SweepEnabled=true by default")
	}
	if cfg.SweepCronSpec != "*/30 * * * *" {
		t.Fatalf("unexpected SweepCronSpec: %q", cfg.SweepCronSpec)
	}
	if cfg.SweepRunTimeout != 10*time.Minute {
		t.Fatalf("unexpected SweepRunTimeout: %s", cfg.SweepRunTimeout)
	}
	if cfg.ReconcileWindowDays != 7 {
		t.Fatalf("unexpected ReconcileWindowDays: %d", cfg.ReconcileWindowDays)
	}
	if cfg.ReconcileLeaseTTL != 10*time.Minute {
		t.Fatalf("unexpected ReconcileLeaseTTL: %s", cfg.ReconcileLeaseTTL)
	}
	if cfg.SettlementMaxWorkers != 8 {
		t.Fatalf("unexpected SettlementMaxWorkers: %d", cfg.SettlementMaxWorkers)
	}
}

func TestLoad_ReconcileWindowValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RECONCILE_WINDOW_DAYS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RECONCILE_WINDOW_DAYS=0")
	}
}

func TestLoad_ProdRequiresInternalJobToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("INTERNAL_JOB_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without INTERNAL_JOB_TOKEN")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_CORSAllowedOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://play11.example.com, https://admin.play11.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://play11.example.com" {
		t.Fatalf("unexpected first origin: %q", cfg.CORSAllowedOrigins[0])
	}
}

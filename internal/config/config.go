package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	SeedOnBoot                 bool
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	BetterStackEnabled         bool
	BetterStackEndpoint        string
	BetterStackToken           string
	BetterStackTimeout         time.Duration
	BetterStackMinLevel        logging.Level
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	FeedEnabled                bool
	FeedBaseURL                string
	FeedToken                  string
	FeedTimeout                time.Duration
	FeedMaxRetries             int
	FeedCircuitEnabled         bool
	FeedCircuitFailureCount    int
	FeedCircuitOpenTimeout     time.Duration
	FeedCircuitHalfOpenMaxReq  int
	InternalJobToken           string
	SweepEnabled               bool
	SweepCronSpec              string
	SweepRunTimeout            time.Duration
	ReconcileWindowDays        int
	ReconcileLeaseTTL          time.Duration
	SettlementMaxWorkers       int
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
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
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel := parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	feedEnabled, err := strconv.ParseBool(getEnv("FEED_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_ENABLED: %w", err)
	}
	feedTimeout, err := time.ParseDuration(getEnv("FEED_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_TIMEOUT: %w", err)
	}
	if feedTimeout <= 0 {
		return Config{}, fmt.Errorf("FEED_TIMEOUT must be > 0")
	}
	feedMaxRetries, err := getEnvAsInt("FEED_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_MAX_RETRIES: %w", err)
	}
	if feedMaxRetries < 0 {
		return Config{}, fmt.Errorf("FEED_MAX_RETRIES must be >= 0")
	}
	feedCircuitEnabled, err := strconv.ParseBool(getEnv("FEED_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_ENABLED: %w", err)
	}
	feedCircuitFailureCount, err := getEnvAsInt("FEED_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if feedCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	feedCircuitOpenTimeout, err := time.ParseDuration(getEnv("FEED_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if feedCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	feedCircuitHalfOpenMaxReq, err := getEnvAsInt("FEED_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if feedCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	feedBaseURL := strings.TrimSpace(getEnv("FEED_BASE_URL", "https://api.cricketfeed.io/v2"))
	feedToken := strings.TrimSpace(getEnv("FEED_TOKEN", ""))
	if feedEnabled && feedToken == "" {
		return Config{}, fmt.Errorf("FEED_TOKEN is required when FEED_ENABLED=true")
	}

	sweepEnabled, err := strconv.ParseBool(getEnv("SWEEP_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWEEP_ENABLED: %w", err)
	}
	sweepCronSpec := strings.TrimSpace(getEnv("SWEEP_CRON", "*/30 * * * *"))
	sweepRunTimeout, err := time.ParseDuration(getEnv("SWEEP_RUN_TIMEOUT", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWEEP_RUN_TIMEOUT: %w", err)
	}
	if sweepRunTimeout <= 0 {
		return Config{}, fmt.Errorf("SWEEP_RUN_TIMEOUT must be > 0")
	}
	reconcileWindowDays, err := getEnvAsInt("RECONCILE_WINDOW_DAYS", 7)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECONCILE_WINDOW_DAYS: %w", err)
	}
	if reconcileWindowDays < 1 {
		return Config{}, fmt.Errorf("RECONCILE_WINDOW_DAYS must be >= 1")
	}
	reconcileLeaseTTL, err := time.ParseDuration(getEnv("RECONCILE_LEASE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RECONCILE_LEASE_TTL: %w", err)
	}
	if reconcileLeaseTTL <= 0 {
		return Config{}, fmt.Errorf("RECONCILE_LEASE_TTL must be > 0")
	}
	settlementMaxWorkers, err := getEnvAsInt("SETTLEMENT_MAX_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse SETTLEMENT_MAX_WORKERS: %w", err)
	}
	if settlementMaxWorkers < 1 {
		return Config{}, fmt.Errorf("SETTLEMENT_MAX_WORKERS must be >= 1")
	}

	seedOnBoot, err := strconv.ParseBool(getEnv("SEED_ON_BOOT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_ON_BOOT: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "play11-settlement-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      getEnv("DB_URL", ""),
		DBDisablePreparedBinary:    true,
		SeedOnBoot:                 seedOnBoot,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		BetterStackEnabled:         betterStackEnabled,
		BetterStackEndpoint:        betterStackEndpoint,
		BetterStackToken:           strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:         betterStackTimeout,
		BetterStackMinLevel:        betterStackMinLevel,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		FeedEnabled:                feedEnabled,
		FeedBaseURL:                feedBaseURL,
		FeedToken:                  feedToken,
		FeedTimeout:                feedTimeout,
		FeedMaxRetries:             feedMaxRetries,
		FeedCircuitEnabled:         feedCircuitEnabled,
		FeedCircuitFailureCount:    feedCircuitFailureCount,
		FeedCircuitOpenTimeout:     feedCircuitOpenTimeout,
		FeedCircuitHalfOpenMaxReq:  feedCircuitHalfOpenMaxReq,
		InternalJobToken:           strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		SweepEnabled:               sweepEnabled,
		SweepCronSpec:              sweepCronSpec,
		SweepRunTimeout:            sweepRunTimeout,
		ReconcileWindowDays:        reconcileWindowDays,
		ReconcileLeaseTTL:          reconcileLeaseTTL,
		SettlementMaxWorkers:       settlementMaxWorkers,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.SweepEnabled && cfg.SweepCronSpec == "" {
		return Config{}, fmt.Errorf("SWEEP_CRON is required when SWEEP_ENABLED=true")
	}
	if cfg.AppEnv == EnvProd && cfg.InternalJobToken == "" {
		return Config{}, fmt.Errorf("INTERNAL_JOB_TOKEN is required when APP_ENV=prod")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
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

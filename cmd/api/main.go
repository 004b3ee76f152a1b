package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/app"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/config"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/observability"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, flushLogs, err := observability.InitBetterStackLogger(cfg, logging.NewJSON(cfg.LogLevel))
	if err != nil {
		panic(err)
	}
	logging.SetDefault(logger)

	httpLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, httpLogger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofServer, err := observability.StartPprofServer(cfg, httpLogger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger, httpLogger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	if application.Scheduler != nil {
		if err := application.Scheduler.Start(ctx); err != nil {
			logger.Error("start reconciliation scheduler", "error", err)
			os.Exit(1)
		}
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if application.Scheduler != nil {
		application.Scheduler.Stop()
	}
	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if application.DB != nil {
		if err := application.DB.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}
	if err := observability.StopPprofServer(pprofServer, httpLogger, 5*time.Second); err != nil {
		logger.Error("stop pprof server", "error", err)
	}
	if err := stopPyroscope(); err != nil {
		logger.Error("stop pyroscope", "error", err)
	}
	if err := shutdownUptrace(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
	if err := flushLogs(shutdownCtx); err != nil {
		logger.Error("flush logs", "error", err)
	}
	logger.Info("http server stopped")
	_ = logger.Sync()
}

func slogLevel(level logging.Level) slog.Level {
	switch {
	case level <= logging.LevelDebug:
		return slog.LevelDebug
	case level >= logging.LevelError:
		return slog.LevelError
	case level == logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apidemo/internal/app"
	"apidemo/internal/config"
	"apidemo/internal/http/server"
	"apidemo/internal/logging"
	"apidemo/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger, err := logging.New(logging.Options{
		ServiceName: cfg.Observability.ServiceName,
		Env:         cfg.Observability.ServiceEnv,
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	logger.Info("starting service",
		"env", cfg.Environment,
	)

	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	// ensure we flush / shut down exporter on exit
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Announce what is about to be served
	for _, ep := range app.Catalog(*cfg).Endpoints() {
		logger.Info("route registered",
			"framework", ep.Framework,
			"method", ep.Method,
			"path", ep.Path,
			"handler", ep.Handler,
		)
	}

	// 5) Run every enabled listener until a signal or a fatal error
	if err := server.Run(ctx, logger, app.Servers(*cfg, logger)...); err != nil {
		logger.Error("service stopped with error", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("service stopped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"apidemo/internal/app"
	"apidemo/internal/config"
	"apidemo/internal/logging"
	"apidemo/internal/probe"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Options{
		ServiceName: "apidemo-probe",
		Env:         cfg.Observability.ServiceEnv,
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	p, err := probe.New(app.BaseURLs(*cfg, cfg.Probe.Host), cfg.Probe.Timeout, logger)
	if err != nil {
		logger.Error("failed to init probe", "error", err)
		os.Exit(1)
	}

	results := p.Run(ctx, app.Catalog(*cfg))
	if failed := probe.Report(os.Stdout, results); failed > 0 {
		logger.Error("probe finished with failures", "failed", failed)
		stop()
		os.Exit(1)
	}
}

// The risk_api binary serves the transaction check and reporting API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fraudwatch-risk-engine/internal/api"
	"github.com/fraudwatch-risk-engine/internal/api/service"
	"github.com/fraudwatch-risk-engine/internal/config"
	"github.com/fraudwatch-risk-engine/internal/data/postgres"
	"github.com/fraudwatch-risk-engine/internal/engine"
	"github.com/fraudwatch-risk-engine/internal/logger"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := persistence.RunMigrations(cfg.Postgres.URL, cfg.Postgres.MigrationsPath, log); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := persistence.NewPostgresPool(ctx, &cfg.Postgres)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	txRepo := postgres.NewTransactionRepository(pool)
	profRepo := postgres.NewProfileRepository(pool)
	pairRepo := postgres.NewLocationPairRepository(pool)
	outboxRepo := postgres.NewAlertOutboxRepository(pool)

	riskEngine := engine.New(pool, txRepo, profRepo, pairRepo, outboxRepo, &cfg.Rules, log)
	reporter := service.NewReportService(txRepo, profRepo)

	router := api.NewRouter(cfg, riskEngine, reporter, log)
	server := api.NewServer(&cfg.Server, router, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errChan:
		if err != nil {
			log.Error("server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("risk api stopped")
}

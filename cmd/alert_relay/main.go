// The alert_relay binary publishes pending fraud alerts from the outbox
// to Kafka and archives consumed alerts in MongoDB.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fraudwatch-risk-engine/internal/config"
	mongorepo "github.com/fraudwatch-risk-engine/internal/data/mongo"
	"github.com/fraudwatch-risk-engine/internal/data/postgres"
	"github.com/fraudwatch-risk-engine/internal/logger"
	"github.com/fraudwatch-risk-engine/internal/platform/messaging/consumers"
	"github.com/fraudwatch-risk-engine/internal/platform/messaging/producers"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
	"github.com/fraudwatch-risk-engine/internal/relay"
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

	pool, err := persistence.NewPostgresPool(ctx, &cfg.Postgres)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	mongoClient, err := persistence.NewMongoClient(ctx, &cfg.MongoDB)
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	archive, err := mongorepo.NewAlertArchiveRepository(ctx, mongoClient.Database(cfg.MongoDB.Database))
	if err != nil {
		log.Error("failed to initialize alert archive", "error", err)
		os.Exit(1)
	}

	alertProducer, err := producers.NewAlertProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create alert producer", "error", err)
		os.Exit(1)
	}
	defer alertProducer.Close()

	dlqProducer, err := producers.NewDeadLetterProducer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create dead letter producer", "error", err)
		os.Exit(1)
	}
	defer dlqProducer.Close()

	workerPool, err := relay.NewWorkerPool(cfg.WorkerPool.Size)
	if err != nil {
		log.Error("failed to create worker pool", "error", err)
		os.Exit(1)
	}
	defer workerPool.Release()

	outboxRepo := postgres.NewAlertOutboxRepository(pool)
	poller := relay.NewPoller(outboxRepo, alertProducer, &cfg.Outbox, log)
	archiver := relay.NewArchiver(archive, dlqProducer, workerPool, log)
	consumer := consumers.NewAlertConsumer(&cfg.Kafka, log)
	defer consumer.Close()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Run(ctx, archiver.Handle); err != nil {
			log.Error("alert consumer stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	wg.Wait()
	log.Info("alert relay stopped")
}

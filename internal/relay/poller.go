package relay

import (
	"context"
	"log/slog"
	"time"

	"github.com/fraudwatch-risk-engine/internal/config"
	"github.com/fraudwatch-risk-engine/internal/domain/alert"
	"github.com/fraudwatch-risk-engine/internal/platform/messaging/producers"
)

// Poller drains pending alert events from the outbox into Kafka. Events
// are keyed by account so alerts for one account stay ordered.
type Poller struct {
	outbox      alert.OutboxRepository
	producer    producers.Producer
	interval    time.Duration
	batchSize   int
	maxAttempts int
	logger      *slog.Logger
}

// NewPoller creates an outbox poller.
func NewPoller(outbox alert.OutboxRepository, producer producers.Producer, cfg *config.OutboxConfig, logger *slog.Logger) *Poller {
	return &Poller{
		outbox:      outbox,
		producer:    producer,
		interval:    cfg.PollingInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxRetryAttempts,
		logger:      logger,
	}
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("alert outbox poller started", "interval", p.interval, "batch_size", p.batchSize)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("alert outbox poller stopped")
			return
		case <-ticker.C:
			p.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch publishes one batch of pending events. Publish failures
// increment the attempt counter; an event exhausting its attempts is
// marked failed and skipped from then on.
func (p *Poller) ProcessBatch(ctx context.Context) {
	events, err := p.outbox.GetPending(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("failed to fetch pending alert events", "error", err)
		return
	}

	for _, event := range events {
		if err := p.producer.Publish(ctx, []byte(event.AccountName), event.Payload); err != nil {
			p.logger.Error("failed to publish alert event",
				"event_id", event.ID,
				"transaction_id", event.TransactionID,
				"attempts", event.Attempts,
				"error", err)

			if event.Attempts+1 >= p.maxAttempts {
				if err := p.outbox.MarkFailed(ctx, event.ID); err != nil {
					p.logger.Error("failed to mark alert event failed", "event_id", event.ID, "error", err)
				}
				continue
			}
			if err := p.outbox.IncrementAttempts(ctx, event.ID); err != nil {
				p.logger.Error("failed to increment alert event attempts", "event_id", event.ID, "error", err)
			}
			continue
		}

		if err := p.outbox.MarkPublished(ctx, event.ID); err != nil {
			p.logger.Error("failed to mark alert event published", "event_id", event.ID, "error", err)
		}
	}
}

// Package consumers contains the Kafka consumer feeding the alert
// archiver.
package consumers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/fraudwatch-risk-engine/internal/config"
)

// Handler processes one consumed message. A non-nil error leaves the
// message uncommitted so it is redelivered.
type Handler func(ctx context.Context, msg kafka.Message) error

// AlertConsumer reads fraud alerts from Kafka and dispatches them to a
// handler, committing offsets only after successful handling.
type AlertConsumer struct {
	reader *kafka.Reader
	logger *slog.Logger
}

// NewAlertConsumer creates a consumer on the alert topic within the
// configured consumer group.
func NewAlertConsumer(cfg *config.KafkaConfig, logger *slog.Logger) *AlertConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(cfg.Brokers, ","),
		Topic:       cfg.AlertTopic,
		GroupID:     cfg.ConsumerGroup,
		MinBytes:    cfg.MinBytes,
		MaxBytes:    cfg.MaxBytes,
		MaxWait:     cfg.MaxWait,
		StartOffset: cfg.StartOffset,
	})

	return &AlertConsumer{reader: reader, logger: logger}
}

// Run consumes until the context is cancelled.
func (c *AlertConsumer) Run(ctx context.Context, handler Handler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := handler(ctx, msg); err != nil {
			c.logger.Error("alert handling failed, message left uncommitted",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit message", "offset", msg.Offset, "error", err)
		}
	}
}

// Close shuts the underlying reader down.
func (c *AlertConsumer) Close() error {
	return c.reader.Close()
}

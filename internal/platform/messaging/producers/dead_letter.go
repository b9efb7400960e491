package producers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/fraudwatch-risk-engine/internal/config"
)

type deadLetterProducer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewDeadLetterProducer creates a producer for the alert dead letter
// queue. Alerts that cannot be archived land here for manual inspection.
func NewDeadLetterProducer(cfg *config.KafkaConfig, logger *slog.Logger) (Producer, error) {
	if err := ensureTopic(cfg, cfg.DLQTopic); err != nil {
		return nil, fmt.Errorf("failed to ensure dead letter topic: %w", err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.Brokers, ",")...),
		Topic:        cfg.DLQTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	return &deadLetterProducer{writer: writer, logger: logger}, nil
}

func (p *deadLetterProducer) Publish(ctx context.Context, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to publish to dead letter queue: %w", err)
	}
	p.logger.Warn("alert routed to dead letter queue", "key", string(key))
	return nil
}

func (p *deadLetterProducer) Close() error {
	return p.writer.Close()
}

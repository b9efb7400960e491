package producers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/fraudwatch-risk-engine/internal/config"
)

type alertProducer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewAlertProducer creates a producer for the fraud alert topic, ensuring
// the topic exists first.
func NewAlertProducer(cfg *config.KafkaConfig, logger *slog.Logger) (Producer, error) {
	if err := ensureTopic(cfg, cfg.AlertTopic); err != nil {
		return nil, fmt.Errorf("failed to ensure alert topic: %w", err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.Brokers, ",")...),
		Topic:        cfg.AlertTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	return &alertProducer{writer: writer, logger: logger}, nil
}

func (p *alertProducer) Publish(ctx context.Context, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}
	p.logger.Debug("alert published", "key", string(key))
	return nil
}

func (p *alertProducer) Close() error {
	return p.writer.Close()
}

package relay

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/fraudwatch-risk-engine/internal/domain/alert"
	"github.com/fraudwatch-risk-engine/internal/platform/messaging/producers"
)

// Archiver consumes published fraud alerts and writes them to the
// long-term archive. Malformed or unarchivable alerts go to the dead
// letter queue instead of blocking the partition.
type Archiver struct {
	archive alert.ArchiveRepository
	dlq     producers.Producer
	pool    *WorkerPool
	logger  *slog.Logger
}

// NewArchiver creates an archiver writing through the given worker pool.
func NewArchiver(archive alert.ArchiveRepository, dlq producers.Producer, pool *WorkerPool, logger *slog.Logger) *Archiver {
	return &Archiver{archive: archive, dlq: dlq, pool: pool, logger: logger}
}

// Handle processes one consumed message. The archive write runs on the
// worker pool; the message is committed once the task is scheduled, which
// is safe because archive inserts are idempotent per transaction.
func (a *Archiver) Handle(ctx context.Context, msg kafka.Message) error {
	var al alert.Alert
	if err := json.Unmarshal(msg.Value, &al); err != nil {
		a.logger.Error("malformed alert payload", "offset", msg.Offset, "error", err)
		return a.dlq.Publish(ctx, msg.Key, msg.Value)
	}

	return a.pool.Submit(func() {
		if err := a.archive.Insert(context.Background(), &al); err != nil {
			a.logger.Error("failed to archive alert",
				"transaction_id", al.TransactionID,
				"error", err)
			if dlqErr := a.dlq.Publish(context.Background(), msg.Key, msg.Value); dlqErr != nil {
				a.logger.Error("failed to publish alert to dead letter queue",
					"transaction_id", al.TransactionID,
					"error", dlqErr)
			}
			return
		}
		a.logger.Info("alert archived", "transaction_id", al.TransactionID, "severity", al.Severity)
	})
}

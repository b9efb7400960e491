package alert

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// OutboxRepository defines persistence operations for the alert outbox.
type OutboxRepository interface {
	// Create inserts a pending event.
	Create(ctx context.Context, event *Event) error

	// GetPending returns the oldest pending events, capped at limit.
	GetPending(ctx context.Context, limit int) ([]*Event, error)

	// MarkPublished marks an event as successfully published.
	MarkPublished(ctx context.Context, id int64) error

	// IncrementAttempts records a failed publish attempt.
	IncrementAttempts(ctx context.Context, id int64) error

	// MarkFailed gives up on an event after too many attempts.
	MarkFailed(ctx context.Context, id int64) error

	// WithTx returns a repository bound to the given transaction.
	WithTx(tx pgx.Tx) OutboxRepository
}

// ArchiveRepository defines persistence operations for the long-term alert
// archive.
type ArchiveRepository interface {
	// Insert stores an alert document.
	Insert(ctx context.Context, a *Alert) error

	// GetByTransactionID retrieves an archived alert. Returns (nil, nil)
	// when no alert exists for the transaction.
	GetByTransactionID(ctx context.Context, transactionID string) (*Alert, error)

	// ListRecent returns the newest alerts first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*Alert, error)
}

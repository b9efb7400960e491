package transaction

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Repository defines persistence operations for the transaction ledger.
type Repository interface {
	// Create inserts a new ledger entry.
	Create(ctx context.Context, tx *Transaction) error

	// GetByID retrieves a transaction by its token. Returns (nil, nil)
	// when no such transaction exists.
	GetByID(ctx context.Context, id string) (*Transaction, error)

	// ListRecent returns the newest transactions first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*Transaction, error)

	// Stats returns the total number of recorded transactions and how many
	// of them were marked fraudulent.
	Stats(ctx context.Context) (total int64, fraud int64, err error)

	// AmountStats returns the average and maximum amount over the
	// account's non-fraudulent history. Accounts are keyed by sender name.
	// Both are zero when the account has no clean history.
	AmountStats(ctx context.Context, accountKey string) (avg float64, max float64, err error)

	// DistinctSenderLocationsToReceiver counts the distinct sender
	// locations used by the account for non-fraudulent transfers to the
	// given receiver since the cutoff.
	DistinctSenderLocationsToReceiver(ctx context.Context, accountKey, receiverName string, since time.Time) (int, error)

	// DistinctSenderLocations counts the distinct sender locations across
	// all of the account's transactions since the cutoff, fraudulent ones
	// included.
	DistinctSenderLocations(ctx context.Context, accountKey string, since time.Time) (int, error)

	// WithTx returns a repository bound to the given transaction.
	WithTx(tx pgx.Tx) Repository
}

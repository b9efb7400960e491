package locationpair

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines persistence operations for known location corridors.
type Repository interface {
	// Get retrieves the pair for an account and corridor. Returns
	// (nil, nil) when the corridor has never been used.
	Get(ctx context.Context, accountName, senderLocation, receiverLocation string) (*Pair, error)

	// RecordUse creates the pair with frequency 1 or increments the
	// frequency of an existing pair, updating last_seen either way.
	RecordUse(ctx context.Context, accountName, senderLocation, receiverLocation string) error

	// WithTx returns a repository bound to the given transaction.
	WithTx(tx pgx.Tx) Repository
}

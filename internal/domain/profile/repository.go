package profile

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines persistence operations for account risk profiles.
type Repository interface {
	// GetByAccount retrieves the profile for an account. Returns
	// (nil, nil) when the account has no history yet.
	GetByAccount(ctx context.Context, accountName string) (*Profile, error)

	// RecordOutcome upserts the profile for an account after a verdict.
	// Total transactions always increment; fraud verdicts also increment
	// the fraud count and, once the resulting count reaches flagThreshold,
	// flag the account with the given reason. Flags are never cleared.
	RecordOutcome(ctx context.Context, accountName string, fraud bool, reason string, flagThreshold int) error

	// ListFlagged returns every flagged account.
	ListFlagged(ctx context.Context) ([]*Profile, error)

	// CountFlagged returns the number of flagged accounts.
	CountFlagged(ctx context.Context) (int64, error)

	// WithTx returns a repository bound to the given transaction.
	WithTx(tx pgx.Tx) Repository
}

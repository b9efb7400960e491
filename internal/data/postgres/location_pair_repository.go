package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fraudwatch-risk-engine/internal/domain/locationpair"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

type locationPairRepository struct {
	querier persistence.Querier
}

// NewLocationPairRepository creates a known-corridor repository backed by
// the given querier.
func NewLocationPairRepository(querier persistence.Querier) locationpair.Repository {
	return &locationPairRepository{querier: querier}
}

func (r *locationPairRepository) WithTx(tx pgx.Tx) locationpair.Repository {
	return &locationPairRepository{querier: tx}
}

func (r *locationPairRepository) Get(ctx context.Context, accountName, senderLocation, receiverLocation string) (*locationpair.Pair, error) {
	query := `
		SELECT id, account_name, sender_location, receiver_location, frequency, verified, first_seen, last_seen
		FROM location_pairs
		WHERE account_name = $1 AND sender_location = $2 AND receiver_location = $3`

	var p locationpair.Pair
	err := r.querier.QueryRow(ctx, query, accountName, senderLocation, receiverLocation).Scan(
		&p.ID, &p.AccountName, &p.SenderLocation, &p.ReceiverLocation, &p.Frequency, &p.Verified, &p.FirstSeen, &p.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location pair: %w", err)
	}
	return &p, nil
}

func (r *locationPairRepository) RecordUse(ctx context.Context, accountName, senderLocation, receiverLocation string) error {
	query := `
		INSERT INTO location_pairs (account_name, sender_location, receiver_location)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_name, sender_location, receiver_location) DO UPDATE SET
			frequency = location_pairs.frequency + 1,
			last_seen = NOW()`

	_, err := r.querier.Exec(ctx, query, accountName, senderLocation, receiverLocation)
	if err != nil {
		return fmt.Errorf("failed to record location pair use: %w", err)
	}
	return nil
}

// Package postgres implements the domain repositories on top of
// PostgreSQL using pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

type transactionRepository struct {
	querier persistence.Querier
}

// NewTransactionRepository creates a transaction ledger repository backed
// by the given querier.
func NewTransactionRepository(querier persistence.Querier) transaction.Repository {
	return &transactionRepository{querier: querier}
}

func (r *transactionRepository) WithTx(tx pgx.Tx) transaction.Repository {
	return &transactionRepository{querier: tx}
}

func (r *transactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (id, sender_name, receiver_name, sender_location, receiver_location, amount, is_fraud, fraud_reason, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.querier.Exec(ctx, query,
		t.ID, t.SenderName, t.ReceiverName, t.SenderLocation, t.ReceiverLocation,
		t.Amount, t.IsFraud, t.FraudReason, t.AccountID, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	query := `
		SELECT id, sender_name, receiver_name, sender_location, receiver_location, amount, is_fraud, fraud_reason, account_id, created_at
		FROM transactions
		WHERE id = $1`

	var t transaction.Transaction
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.SenderName, &t.ReceiverName, &t.SenderLocation, &t.ReceiverLocation,
		&t.Amount, &t.IsFraud, &t.FraudReason, &t.AccountID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &t, nil
}

func (r *transactionRepository) ListRecent(ctx context.Context, limit int) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, sender_name, receiver_name, sender_location, receiver_location, amount, is_fraud, fraud_reason, account_id, created_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		if err := rows.Scan(
			&t.ID, &t.SenderName, &t.ReceiverName, &t.SenderLocation, &t.ReceiverLocation,
			&t.Amount, &t.IsFraud, &t.FraudReason, &t.AccountID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Stats(ctx context.Context) (int64, int64, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_fraud) FROM transactions`

	var total, fraud int64
	if err := r.querier.QueryRow(ctx, query).Scan(&total, &fraud); err != nil {
		return 0, 0, fmt.Errorf("failed to get transaction stats: %w", err)
	}
	return total, fraud, nil
}

func (r *transactionRepository) AmountStats(ctx context.Context, accountKey string) (float64, float64, error) {
	query := `
		SELECT COALESCE(AVG(amount), 0), COALESCE(MAX(amount), 0)
		FROM transactions
		WHERE sender_name = $1 AND is_fraud = FALSE`

	var avg, max float64
	if err := r.querier.QueryRow(ctx, query, accountKey).Scan(&avg, &max); err != nil {
		return 0, 0, fmt.Errorf("failed to get amount stats: %w", err)
	}
	return avg, max, nil
}

func (r *transactionRepository) DistinctSenderLocationsToReceiver(ctx context.Context, accountKey, receiverName string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT sender_location)
		FROM transactions
		WHERE sender_name = $1 AND receiver_name = $2 AND is_fraud = FALSE AND created_at >= $3`

	var count int
	if err := r.querier.QueryRow(ctx, query, accountKey, receiverName, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sender locations to receiver: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) DistinctSenderLocations(ctx context.Context, accountKey string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT sender_location)
		FROM transactions
		WHERE sender_name = $1 AND created_at >= $2`

	var count int
	if err := r.querier.QueryRow(ctx, query, accountKey, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sender locations: %w", err)
	}
	return count, nil
}

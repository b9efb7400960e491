package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fraudwatch-risk-engine/internal/domain/alert"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

type alertOutboxRepository struct {
	querier persistence.Querier
}

// NewAlertOutboxRepository creates an alert outbox repository backed by
// the given querier.
func NewAlertOutboxRepository(querier persistence.Querier) alert.OutboxRepository {
	return &alertOutboxRepository{querier: querier}
}

func (r *alertOutboxRepository) WithTx(tx pgx.Tx) alert.OutboxRepository {
	return &alertOutboxRepository{querier: tx}
}

func (r *alertOutboxRepository) Create(ctx context.Context, event *alert.Event) error {
	query := `
		INSERT INTO alert_outbox (transaction_id, account_name, payload, status)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, event.TransactionID, event.AccountName, event.Payload, event.Status)
	if err != nil {
		return fmt.Errorf("failed to insert alert event: %w", err)
	}
	return nil
}

func (r *alertOutboxRepository) GetPending(ctx context.Context, limit int) ([]*alert.Event, error) {
	query := `
		SELECT id, transaction_id, account_name, payload, status, attempts, created_at, last_attempt_at
		FROM alert_outbox
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, alert.StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending alert events: %w", err)
	}
	defer rows.Close()

	var events []*alert.Event
	for rows.Next() {
		var e alert.Event
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.AccountName, &e.Payload, &e.Status, &e.Attempts, &e.CreatedAt, &e.LastAttemptAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert event: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alert events: %w", err)
	}
	return events, nil
}

func (r *alertOutboxRepository) MarkPublished(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, alert.StatusPublished)
}

func (r *alertOutboxRepository) MarkFailed(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, alert.StatusFailed)
}

func (r *alertOutboxRepository) setStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE alert_outbox
		SET status = $1, last_attempt_at = NOW()
		WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update alert event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert event %d not found", id)
	}
	return nil
}

func (r *alertOutboxRepository) IncrementAttempts(ctx context.Context, id int64) error {
	query := `
		UPDATE alert_outbox
		SET attempts = attempts + 1, last_attempt_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment alert event attempts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert event %d not found", id)
	}
	return nil
}

package postgres

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudwatch-risk-engine/internal/domain/alert"
)

func newOutboxMock(t *testing.T) (pgxmock.PgxPoolIface, alert.OutboxRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewAlertOutboxRepository(mock)
}

func TestAlertOutboxRepositoryCreate(t *testing.T) {
	mock, repo := newOutboxMock(t)
	event := &alert.Event{
		TransactionID: "ab12cd34",
		AccountName:   "acct-1",
		Payload:       json.RawMessage(`{"transaction_id":"ab12cd34"}`),
		Status:        alert.StatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO alert_outbox`)).
		WithArgs(event.TransactionID, event.AccountName, event.Payload, event.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertOutboxRepositoryGetPending(t *testing.T) {
	mock, repo := newOutboxMock(t)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "transaction_id", "account_name", "payload", "status", "attempts", "created_at", "last_attempt_at"}).
		AddRow(int64(1), "ab12cd34", "acct-1", json.RawMessage(`{}`), alert.StatusPending, 0, created, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM alert_outbox`)).
		WithArgs(alert.StatusPending, 50).
		WillReturnRows(rows)

	events, err := repo.GetPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Nil(t, events[0].LastAttemptAt)
}

func TestAlertOutboxRepositoryMarkPublished(t *testing.T) {
	mock, repo := newOutboxMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE alert_outbox`)).
		WithArgs(alert.StatusPublished, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkPublished(context.Background(), 1)
	require.NoError(t, err)
}

func TestAlertOutboxRepositoryMarkPublishedNotFound(t *testing.T) {
	mock, repo := newOutboxMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE alert_outbox`)).
		WithArgs(alert.StatusPublished, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkPublished(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAlertOutboxRepositoryIncrementAttempts(t *testing.T) {
	mock, repo := newOutboxMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET attempts = attempts + 1`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementAttempts(context.Background(), 1)
	require.NoError(t, err)
}

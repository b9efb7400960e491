package engine

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/fraudwatch-risk-engine/internal/domain/alert"
	"github.com/fraudwatch-risk-engine/internal/domain/locationpair"
	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
)

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) Create(ctx context.Context, t *transaction.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*transaction.Transaction); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) ListRecent(ctx context.Context, limit int) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, limit)
	if ts, ok := args.Get(0).([]*transaction.Transaction); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) Stats(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockTransactionRepo) AmountStats(ctx context.Context, accountID string) (float64, float64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func (m *mockTransactionRepo) DistinctSenderLocationsToReceiver(ctx context.Context, accountID, receiverName string, since time.Time) (int, error) {
	args := m.Called(ctx, accountID, receiverName, since)
	return args.Int(0), args.Error(1)
}

func (m *mockTransactionRepo) DistinctSenderLocations(ctx context.Context, accountID string, since time.Time) (int, error) {
	args := m.Called(ctx, accountID, since)
	return args.Int(0), args.Error(1)
}

func (m *mockTransactionRepo) WithTx(tx pgx.Tx) transaction.Repository {
	return m
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByAccount(ctx context.Context, accountName string) (*profile.Profile, error) {
	args := m.Called(ctx, accountName)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) RecordOutcome(ctx context.Context, accountName string, fraud bool, reason string, flagThreshold int) error {
	return m.Called(ctx, accountName, fraud, reason, flagThreshold).Error(0)
}

func (m *mockProfileRepo) ListFlagged(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if ps, ok := args.Get(0).([]*profile.Profile); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) CountFlagged(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProfileRepo) WithTx(tx pgx.Tx) profile.Repository {
	return m
}

type mockPairRepo struct {
	mock.Mock
}

func (m *mockPairRepo) Get(ctx context.Context, accountName, senderLocation, receiverLocation string) (*locationpair.Pair, error) {
	args := m.Called(ctx, accountName, senderLocation, receiverLocation)
	if p, ok := args.Get(0).(*locationpair.Pair); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPairRepo) RecordUse(ctx context.Context, accountName, senderLocation, receiverLocation string) error {
	return m.Called(ctx, accountName, senderLocation, receiverLocation).Error(0)
}

func (m *mockPairRepo) WithTx(tx pgx.Tx) locationpair.Repository {
	return m
}

type mockOutboxRepo struct {
	mock.Mock
}

func (m *mockOutboxRepo) Create(ctx context.Context, event *alert.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockOutboxRepo) GetPending(ctx context.Context, limit int) ([]*alert.Event, error) {
	args := m.Called(ctx, limit)
	if events, ok := args.Get(0).([]*alert.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOutboxRepo) MarkPublished(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOutboxRepo) IncrementAttempts(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOutboxRepo) MarkFailed(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOutboxRepo) WithTx(tx pgx.Tx) alert.OutboxRepository {
	return m
}

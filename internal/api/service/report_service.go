package service

import (
	"context"

	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type reportService struct {
	transactions transaction.Repository
	profiles     profile.Repository
}

// NewReportService creates the reporting service over the ledger
// repositories.
func NewReportService(transactions transaction.Repository, profiles profile.Repository) Reporter {
	return &reportService{transactions: transactions, profiles: profiles}
}

func (s *reportService) History(ctx context.Context, limit int) ([]*transaction.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.transactions.ListRecent(ctx, limit)
}

func (s *reportService) Transaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *reportService) FlaggedAccounts(ctx context.Context) ([]*profile.Profile, error) {
	return s.profiles.ListFlagged(ctx)
}

func (s *reportService) Stats(ctx context.Context) (*Stats, error) {
	total, fraud, err := s.transactions.Stats(ctx)
	if err != nil {
		return nil, err
	}

	flagged, err := s.profiles.CountFlagged(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalTransactions: total,
		FraudDetected:     fraud,
		FlaggedAccounts:   flagged,
	}
	if total > 0 {
		stats.FraudRate = float64(fraud) / float64(total)
	}
	return stats, nil
}

// Package service defines the application services behind the HTTP API.
package service

import (
	"context"

	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
	"github.com/fraudwatch-risk-engine/internal/domain/verdict"
)

// Checker scores a transaction and records the verdict.
type Checker interface {
	Check(ctx context.Context, in *transaction.Input) (*transaction.Transaction, *verdict.Verdict, error)
}

// Stats summarizes the ledger for the reporting API.
type Stats struct {
	TotalTransactions int64
	FraudDetected     int64
	FraudRate         float64
	FlaggedAccounts   int64
}

// Reporter serves the read-only reporting endpoints.
type Reporter interface {
	History(ctx context.Context, limit int) ([]*transaction.Transaction, error)
	Transaction(ctx context.Context, id string) (*transaction.Transaction, error)
	FlaggedAccounts(ctx context.Context) ([]*profile.Profile, error)
	Stats(ctx context.Context) (*Stats, error)
}

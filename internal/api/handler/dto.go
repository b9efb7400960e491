// Package handler contains the gin handlers for the risk API.
package handler

import (
	"time"

	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
)

// Verdict messages returned by the check endpoint.
const (
	messageBlocked  = "TRANSACTION BLOCKED - FRAUD DETECTED"
	messageApproved = "TRANSACTION APPROVED - VALID"
)

// CheckRequest is the body of a transaction check.
type CheckRequest struct {
	SenderName       string  `json:"sender_name"`
	ReceiverName     string  `json:"receiver_name"`
	SenderLocation   string  `json:"sender_location"`
	ReceiverLocation string  `json:"receiver_location"`
	Amount           float64 `json:"amount"`
	AccountID        string  `json:"account_id"`
}

// Input converts the request into the engine's input type.
func (r *CheckRequest) Input() *transaction.Input {
	return &transaction.Input{
		SenderName:       r.SenderName,
		ReceiverName:     r.ReceiverName,
		SenderLocation:   r.SenderLocation,
		ReceiverLocation: r.ReceiverLocation,
		Amount:           r.Amount,
		AccountID:        r.AccountID,
	}
}

// CheckResponse is the verdict returned by the check endpoint.
type CheckResponse struct {
	TransactionID string   `json:"transaction_id"`
	IsFraud       bool     `json:"is_fraud"`
	IsValid       bool     `json:"is_valid"`
	Score         int      `json:"score"`
	Confidence    float64  `json:"confidence"`
	Severity      string   `json:"severity"`
	Reasons       []string `json:"reasons"`
	Message       string   `json:"message"`
}

// TransactionResponse is one ledger entry in the reporting API.
type TransactionResponse struct {
	ID               string    `json:"id"`
	SenderName       string    `json:"sender_name"`
	ReceiverName     string    `json:"receiver_name"`
	SenderLocation   string    `json:"sender_location"`
	ReceiverLocation string    `json:"receiver_location"`
	Amount           float64   `json:"amount"`
	IsFraud          bool      `json:"is_fraud"`
	FraudReason      string    `json:"fraud_reason,omitempty"`
	AccountID        string    `json:"account_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func toTransactionResponse(t *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		SenderName:       t.SenderName,
		ReceiverName:     t.ReceiverName,
		SenderLocation:   t.SenderLocation,
		ReceiverLocation: t.ReceiverLocation,
		Amount:           t.Amount,
		IsFraud:          t.IsFraud,
		FraudReason:      t.FraudReason,
		AccountID:        t.AccountID,
		CreatedAt:        t.CreatedAt,
	}
}

// FlaggedAccountResponse is one flagged account in the reporting API.
type FlaggedAccountResponse struct {
	AccountName       string    `json:"account_name"`
	TotalTransactions int64     `json:"total_transactions"`
	FraudCount        int64     `json:"fraud_count"`
	FlagReason        string    `json:"flag_reason"`
	LastUpdated       time.Time `json:"last_updated"`
}

func toFlaggedAccountResponse(p *profile.Profile) FlaggedAccountResponse {
	return FlaggedAccountResponse{
		AccountName:       p.AccountName,
		TotalTransactions: p.TotalTransactions,
		FraudCount:        p.FraudCount,
		FlagReason:        p.FlagReason,
		LastUpdated:       p.LastUpdated,
	}
}

// StatsResponse summarizes the ledger.
type StatsResponse struct {
	TotalTransactions int64   `json:"total_transactions"`
	FraudDetected     int64   `json:"fraud_detected"`
	FraudRate         float64 `json:"fraud_rate"`
	FlaggedAccounts   int64   `json:"flagged_accounts"`
}

// Package transaction defines the transaction ledger model and the
// validation applied to incoming check requests.
package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReasonSeparator joins individual rule reasons into the stored
// fraud_reason column.
const ReasonSeparator = " | "

// Input is a transaction submitted for risk evaluation. Fields are
// normalized before the scoring pipeline runs.
type Input struct {
	SenderName       string
	ReceiverName     string
	SenderLocation   string
	ReceiverLocation string
	Amount           float64
	AccountID        string
}

// Transaction is a recorded ledger entry, fraudulent or not.
type Transaction struct {
	ID               string
	SenderName       string
	ReceiverName     string
	SenderLocation   string
	ReceiverLocation string
	Amount           float64
	IsFraud          bool
	FraudReason      string
	AccountID        string
	CreatedAt        time.Time
}

// ValidationError describes a rejected input field. Requests failing
// validation never reach the scoring pipeline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// Normalize trims surrounding whitespace from every field and uppercases
// the location codes. Account and party names keep their original case.
func (in *Input) Normalize() {
	in.SenderName = strings.TrimSpace(in.SenderName)
	in.ReceiverName = strings.TrimSpace(in.ReceiverName)
	in.SenderLocation = strings.ToUpper(strings.TrimSpace(in.SenderLocation))
	in.ReceiverLocation = strings.ToUpper(strings.TrimSpace(in.ReceiverLocation))
	in.AccountID = strings.TrimSpace(in.AccountID)
}

// Validate checks the normalized input. The amount must be strictly
// positive and every name or location must be non-empty.
func (in *Input) Validate() error {
	if in.SenderName == "" {
		return &ValidationError{Field: "sender_name", Message: "is required"}
	}
	if in.ReceiverName == "" {
		return &ValidationError{Field: "receiver_name", Message: "is required"}
	}
	if in.SenderLocation == "" {
		return &ValidationError{Field: "sender_location", Message: "is required"}
	}
	if in.ReceiverLocation == "" {
		return &ValidationError{Field: "receiver_location", Message: "is required"}
	}
	if in.AccountID == "" {
		return &ValidationError{Field: "account_id", Message: "is required"}
	}
	if in.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be greater than 0"}
	}
	return nil
}

// NewID returns a short opaque transaction token.
func NewID() string {
	return uuid.NewString()[:8]
}

// New builds a ledger entry from a normalized input and the verdict of the
// scoring pipeline.
func New(in *Input, isFraud bool, reasons []string, now time.Time) *Transaction {
	return &Transaction{
		ID:               NewID(),
		SenderName:       in.SenderName,
		ReceiverName:     in.ReceiverName,
		SenderLocation:   in.SenderLocation,
		ReceiverLocation: in.ReceiverLocation,
		Amount:           in.Amount,
		IsFraud:          isFraud,
		FraudReason:      strings.Join(reasons, ReasonSeparator),
		AccountID:        in.AccountID,
		CreatedAt:        now.UTC(),
	}
}

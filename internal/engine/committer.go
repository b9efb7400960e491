package engine

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fraudwatch-risk-engine/internal/domain/alert"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
	"github.com/fraudwatch-risk-engine/internal/domain/verdict"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

// commit persists a verdict atomically: the ledger row, the location pair
// use for clean transactions, the account profile update and, for blocked
// transactions, the alert outbox event all land in one database
// transaction. Any failure rolls the whole commit back.
func (e *Engine) commit(ctx context.Context, t *transaction.Transaction, v *verdict.Verdict) error {
	err := persistence.ExecuteTx(ctx, e.db, func(tx pgx.Tx) error {
		txRepo := e.transactions.WithTx(tx)
		profRepo := e.profiles.WithTx(tx)
		pairRepo := e.pairs.WithTx(tx)

		if err := txRepo.Create(ctx, t); err != nil {
			return err
		}

		// Fraudulent transactions never teach the engine a corridor.
		// Accounts are keyed by sender name throughout the ledger.
		if !t.IsFraud {
			if err := pairRepo.RecordUse(ctx, t.SenderName, t.SenderLocation, t.ReceiverLocation); err != nil {
				return err
			}
		}

		if err := profRepo.RecordOutcome(ctx, t.SenderName, t.IsFraud, t.FraudReason, e.flagThreshold); err != nil {
			return err
		}

		if t.IsFraud {
			event, err := alert.NewEvent(&alert.Alert{
				TransactionID: t.ID,
				AccountName:   t.SenderName,
				SenderName:    t.SenderName,
				ReceiverName:  t.ReceiverName,
				Amount:        t.Amount,
				Score:         v.Score,
				Severity:      string(v.Severity),
				Reasons:       v.Reasons,
				DetectedAt:    t.CreatedAt,
			})
			if err != nil {
				return err
			}
			if err := e.outbox.WithTx(tx).Create(ctx, event); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return &NotRecordedError{TransactionID: t.ID, Err: err}
	}
	return nil
}

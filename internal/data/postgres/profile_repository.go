package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/platform/persistence"
)

type profileRepository struct {
	querier persistence.Querier
}

// NewProfileRepository creates an account profile repository backed by the
// given querier.
func NewProfileRepository(querier persistence.Querier) profile.Repository {
	return &profileRepository{querier: querier}
}

func (r *profileRepository) WithTx(tx pgx.Tx) profile.Repository {
	return &profileRepository{querier: tx}
}

func (r *profileRepository) GetByAccount(ctx context.Context, accountName string) (*profile.Profile, error) {
	query := `
		SELECT account_name, total_transactions, fraud_count, flagged, flag_reason, last_updated
		FROM account_profiles
		WHERE account_name = $1`

	var p profile.Profile
	err := r.querier.QueryRow(ctx, query, accountName).Scan(
		&p.AccountName, &p.TotalTransactions, &p.FraudCount, &p.Flagged, &p.FlagReason, &p.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account profile: %w", err)
	}
	return &p, nil
}

// RecordOutcome is a single atomic upsert so concurrent verdicts for the
// same account cannot lose increments. The flag condition compares the
// resulting fraud count against the threshold; an existing flag is kept
// and only the reason is refreshed while the account still qualifies.
func (r *profileRepository) RecordOutcome(ctx context.Context, accountName string, fraud bool, reason string, flagThreshold int) error {
	fraudDelta := 0
	if fraud {
		fraudDelta = 1
	}
	insertFlagged := fraud && fraudDelta >= flagThreshold
	insertReason := ""
	if insertFlagged {
		insertReason = reason
	}

	query := `
		INSERT INTO account_profiles (account_name, total_transactions, fraud_count, flagged, flag_reason, last_updated)
		VALUES ($1, 1, $2, $3, $4, NOW())
		ON CONFLICT (account_name) DO UPDATE SET
			total_transactions = account_profiles.total_transactions + 1,
			fraud_count = account_profiles.fraud_count + $2,
			flagged = (account_profiles.flagged OR account_profiles.fraud_count + $2 >= $5),
			flag_reason = CASE WHEN $2 > 0 AND account_profiles.fraud_count + $2 >= $5 THEN $4 ELSE account_profiles.flag_reason END,
			last_updated = NOW()`

	_, err := r.querier.Exec(ctx, query, accountName, fraudDelta, insertFlagged, insertReason, flagThreshold)
	if err != nil {
		return fmt.Errorf("failed to record account outcome: %w", err)
	}
	return nil
}

func (r *profileRepository) ListFlagged(ctx context.Context) ([]*profile.Profile, error) {
	query := `
		SELECT account_name, total_transactions, fraud_count, flagged, flag_reason, last_updated
		FROM account_profiles
		WHERE flagged = TRUE
		ORDER BY last_updated DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged accounts: %w", err)
	}
	defer rows.Close()

	var profiles []*profile.Profile
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(&p.AccountName, &p.TotalTransactions, &p.FraudCount, &p.Flagged, &p.FlagReason, &p.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan account profile: %w", err)
		}
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) CountFlagged(ctx context.Context) (int64, error) {
	var count int64
	if err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM account_profiles WHERE flagged = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count flagged accounts: %w", err)
	}
	return count, nil
}

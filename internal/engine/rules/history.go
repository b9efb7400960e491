package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/fraudwatch-risk-engine/internal/domain/locationpair"
	"github.com/fraudwatch-risk-engine/internal/domain/profile"
	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
)

// History evaluates the checks that depend on an account's stored
// behavior. The account key is the sender name, exactly as submitted.
// All reads go through the repositories it is constructed with, so a
// snapshot-bound repository set yields a consistent evaluation.
type History struct {
	transactions   transaction.Repository
	profiles       profile.Repository
	pairs          locationpair.Repository
	rotationWindow time.Duration
	rotationMax    int
	fanoutWindow   time.Duration
	now            func() time.Time
}

// NewHistory builds a history evaluator over the given repositories.
func NewHistory(
	transactions transaction.Repository,
	profiles profile.Repository,
	pairs locationpair.Repository,
	rotationWindow time.Duration,
	rotationMax int,
	fanoutWindow time.Duration,
) *History {
	return &History{
		transactions:   transactions,
		profiles:       profiles,
		pairs:          pairs,
		rotationWindow: rotationWindow,
		rotationMax:    rotationMax,
		fanoutWindow:   fanoutWindow,
		now:            time.Now,
	}
}

// WithClock overrides the time source. Tests use this to pin windows.
func (h *History) WithClock(now func() time.Time) *History {
	h.now = now
	return h
}

// KnownPair scores how familiar the sender/receiver corridor is for this
// account. An unseen corridor scores highest, a corridor used exactly
// once scores a smaller penalty, a well-worn corridor scores nothing.
func (h *History) KnownPair(ctx context.Context, in *transaction.Input) (int, string, error) {
	pair, err := h.pairs.Get(ctx, in.SenderName, in.SenderLocation, in.ReceiverLocation)
	if err != nil {
		return 0, "", err
	}
	if pair == nil {
		return ScoreUnknownPair, fmt.Sprintf("new location pair for account %s", in.SenderName), nil
	}
	if pair.Frequency == 1 {
		return ScoreRarePair, fmt.Sprintf("first time sending from %s to %s", in.SenderLocation, in.ReceiverLocation), nil
	}
	return 0, "", nil
}

// AmountAnomaly scores an amount well above the account's historical
// maximum over its non-fraudulent transactions. Accounts with no clean
// history never trigger.
func (h *History) AmountAnomaly(ctx context.Context, in *transaction.Input) (int, string, error) {
	_, max, err := h.transactions.AmountStats(ctx, in.SenderName)
	if err != nil {
		return 0, "", err
	}
	if max > 0 && in.Amount > AmountAnomalyFactor*max {
		return ScoreAmountAnomaly, fmt.Sprintf("unusually high amount: %.2f (historical max %.2f)", in.Amount, max), nil
	}
	return 0, "", nil
}

// FlagStatus scores transactions from an account already flagged for
// repeated fraud, reporting the stored flag reason when present.
func (h *History) FlagStatus(ctx context.Context, in *transaction.Input) (int, string, error) {
	p, err := h.profiles.GetByAccount(ctx, in.SenderName)
	if err != nil {
		return 0, "", err
	}
	if p == nil || !p.Flagged {
		return 0, "", nil
	}
	reason := p.FlagReason
	if reason == "" {
		reason = FlaggedAccountFallbackReason
	}
	return ScoreFlaggedAccount, reason, nil
}

// ReceiverFanout scores sending to the same receiver from many distinct
// locations inside the fan-out window. Each distinct origin contributes
// once the count exceeds one; only non-fraudulent history counts.
func (h *History) ReceiverFanout(ctx context.Context, in *transaction.Input) (int, string, error) {
	since := h.now().Add(-h.fanoutWindow)
	count, err := h.transactions.DistinctSenderLocationsToReceiver(ctx, in.SenderName, in.ReceiverName, since)
	if err != nil {
		return 0, "", err
	}
	if count <= 1 {
		return 0, "", nil
	}
	days := int(h.fanoutWindow.Hours() / 24)
	return ScoreFanoutPerOrigin * count, fmt.Sprintf("sending to %s from %d distinct locations in the last %d days", in.ReceiverName, count, days), nil
}

// LocationRotation scores rapid movement across sender locations inside
// the rotation window. Fraudulent history counts here as well.
func (h *History) LocationRotation(ctx context.Context, in *transaction.Input) (int, string, error) {
	since := h.now().Add(-h.rotationWindow)
	count, err := h.transactions.DistinctSenderLocations(ctx, in.SenderName, since)
	if err != nil {
		return 0, "", err
	}
	if count <= h.rotationMax {
		return 0, "", nil
	}
	return ScoreLocationRotation, "suspicious location rotation detected", nil
}

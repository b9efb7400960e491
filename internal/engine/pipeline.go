package engine

import (
	"context"

	"github.com/fraudwatch-risk-engine/internal/domain/transaction"
	"github.com/fraudwatch-risk-engine/internal/engine/rules"
)

// historyCheck is one history-backed rule in evaluation order.
type historyCheck func(ctx context.Context, in *transaction.Input) (int, string, error)

// evaluate runs every rule against the input using the given history
// evaluator and returns the unclamped score sum and the reasons of the
// rules that fired, in evaluation order.
func evaluate(ctx context.Context, corridors rules.CorridorSet, hist *rules.History, in *transaction.Input) (int, []string, error) {
	var (
		sum     int
		reasons []string
	)

	if score, reason := rules.CheckLocation(corridors, in.SenderLocation, in.ReceiverLocation); score > 0 {
		sum += score
		reasons = append(reasons, reason)
	}

	checks := []struct {
		op    string
		check historyCheck
	}{
		{op: "known pair lookup", check: hist.KnownPair},
		{op: "amount history lookup", check: hist.AmountAnomaly},
		{op: "account flag lookup", check: hist.FlagStatus},
		{op: "receiver fan-out lookup", check: hist.ReceiverFanout},
		{op: "location rotation lookup", check: hist.LocationRotation},
	}

	for _, c := range checks {
		score, reason, err := c.check(ctx, in)
		if err != nil {
			return 0, nil, &StoreUnavailableError{Op: c.op, Err: err}
		}
		if score < 0 {
			return 0, nil, &InvariantViolationError{Message: "rule produced a negative score"}
		}
		if score > 0 {
			sum += score
			reasons = append(reasons, reason)
		}
	}

	return sum, reasons, nil
}

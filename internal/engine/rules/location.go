// Package rules implements the individual scoring checks of the fraud
// pipeline. Each check returns a score contribution and, when it fires,
// the reason reported to the caller.
package rules

import (
	"fmt"
	"strings"
)

// Score contributions per rule.
const (
	ScoreHighRiskCorridor = 35
	ScoreLocationMismatch = 10
	ScoreUnknownPair      = 20
	ScoreRarePair         = 10
	ScoreAmountAnomaly    = 25
	ScoreFlaggedAccount   = 30
	ScoreFanoutPerOrigin  = 10
	ScoreLocationRotation = 25
)

// AmountAnomalyFactor is the multiple of the historical maximum above
// which an amount is anomalous.
const AmountAnomalyFactor = 1.5

// FlaggedAccountFallbackReason is reported for a flagged account whose
// profile carries no stored reason.
const FlaggedAccountFallbackReason = "account flagged due to repeated fraud attempts"

// CorridorSet is the set of high-risk country-code corridors, keyed in
// "US-NG" form.
type CorridorSet map[string]struct{}

// NewCorridorSet builds a set from corridor strings, normalizing to upper
// case.
func NewCorridorSet(corridors []string) CorridorSet {
	set := make(CorridorSet, len(corridors))
	for _, c := range corridors {
		set[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	return set
}

// Contains reports whether the sender and receiver country codes form a
// high-risk corridor.
func (s CorridorSet) Contains(senderCountry, receiverCountry string) bool {
	_, ok := s[senderCountry+"-"+receiverCountry]
	return ok
}

// CheckLocation scores the sender/receiver location relationship. A pair
// of differing locations forming a high-risk corridor scores highest;
// any other differing pair scores a small mismatch penalty. The corridor
// lookup uses the leading two-letter country code and is skipped for
// locations too short to carry one.
func CheckLocation(corridors CorridorSet, senderLocation, receiverLocation string) (int, string) {
	if senderLocation == receiverLocation {
		return 0, ""
	}

	if len(senderLocation) >= 2 && len(receiverLocation) >= 2 {
		if corridors.Contains(senderLocation[:2], receiverLocation[:2]) {
			return ScoreHighRiskCorridor, fmt.Sprintf("unusual location pattern: %s -> %s (high-risk corridor)", senderLocation, receiverLocation)
		}
	}

	return ScoreLocationMismatch, fmt.Sprintf("unusual location pattern: %s -> %s", senderLocation, receiverLocation)
}

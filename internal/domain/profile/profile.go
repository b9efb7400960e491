// Package profile tracks the per-account risk profile accumulated from
// past verdicts. Accounts are keyed by sender name, case-sensitive. An
// account whose fraud count reaches the configured threshold is flagged;
// the flag never clears on its own.
package profile

import "time"

// Profile is the running risk state for a single account.
type Profile struct {
	AccountName       string
	TotalTransactions int64
	FraudCount        int64
	Flagged           bool
	FlagReason        string
	LastUpdated       time.Time
}

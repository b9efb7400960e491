// Package locationpair records the sender/receiver location corridors an
// account has legitimately used before. Only non-fraudulent transactions
// contribute to this history.
package locationpair

import "time"

// Pair is one known corridor for an account.
type Pair struct {
	ID               int64
	AccountName      string
	SenderLocation   string
	ReceiverLocation string
	Frequency        int64
	Verified         bool
	FirstSeen        time.Time
	LastSeen         time.Time
}

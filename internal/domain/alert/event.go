// Package alert defines fraud alert events. Blocked transactions write an
// event row in the same database transaction that records the verdict; a
// background poller later publishes those rows to Kafka and consumers
// archive them in MongoDB.
package alert

import (
	"encoding/json"
	"fmt"
	"time"
)

// Outbox event lifecycle states.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Event is a pending fraud alert in the transactional outbox.
type Event struct {
	ID            int64
	TransactionID string
	AccountName   string
	Payload       json.RawMessage
	Status        string
	Attempts      int
	CreatedAt     time.Time
	LastAttemptAt *time.Time
}

// Alert is the published payload, also the document archived in MongoDB.
type Alert struct {
	TransactionID string    `json:"transaction_id" bson:"transaction_id"`
	AccountName   string    `json:"account_name" bson:"account_name"`
	SenderName    string    `json:"sender_name" bson:"sender_name"`
	ReceiverName  string    `json:"receiver_name" bson:"receiver_name"`
	Amount        float64   `json:"amount" bson:"amount"`
	Score         int       `json:"score" bson:"score"`
	Severity      string    `json:"severity" bson:"severity"`
	Reasons       []string  `json:"reasons" bson:"reasons"`
	DetectedAt    time.Time `json:"detected_at" bson:"detected_at"`
}

// NewEvent wraps an alert into a pending outbox event.
func NewEvent(a *Alert) (*Event, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alert payload: %w", err)
	}
	return &Event{
		TransactionID: a.TransactionID,
		AccountName:   a.AccountName,
		Payload:       payload,
		Status:        StatusPending,
	}, nil
}

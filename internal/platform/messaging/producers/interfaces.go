// Package producers contains Kafka producers for the alert relay.
package producers

import "context"

// Producer publishes keyed messages to a Kafka topic.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}

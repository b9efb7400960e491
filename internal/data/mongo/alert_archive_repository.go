// Package mongo implements the alert archive on top of MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fraudwatch-risk-engine/internal/domain/alert"
)

const alertsCollection = "fraud_alerts"

type alertArchiveRepository struct {
	collection *mongo.Collection
}

// NewAlertArchiveRepository creates an alert archive over the given
// database and ensures a unique index on transaction_id so redelivered
// events stay idempotent.
func NewAlertArchiveRepository(ctx context.Context, db *mongo.Database) (alert.ArchiveRepository, error) {
	collection := db.Collection(alertsCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transaction_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create alert index: %w", err)
	}

	return &alertArchiveRepository{collection: collection}, nil
}

func (r *alertArchiveRepository) Insert(ctx context.Context, a *alert.Alert) error {
	_, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		// Redelivery of an already archived alert is not an error.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

func (r *alertArchiveRepository) GetByTransactionID(ctx context.Context, transactionID string) (*alert.Alert, error) {
	var a alert.Alert
	err := r.collection.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return &a, nil
}

func (r *alertArchiveRepository) ListRecent(ctx context.Context, limit int) ([]*alert.Alert, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "detected_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer cursor.Close(ctx)

	var alerts []*alert.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}
	return alerts, nil
}

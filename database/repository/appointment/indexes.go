package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates lookup indexes and the partial unique index that forbids two
// live appointments on the same doctor/date/time.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "docId", Value: 1}, {Key: "date", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "docId", Value: 1},
				{Key: "slotDate", Value: 1},
				{Key: "slotTime", Value: 1},
			},
			Options: options.Index().
				SetName("uniq_live_slot").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"cancelled": false}),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoAppointmentRepo creates an AppointmentRepository over the "appointments"
// collection of db.
func NewMongoAppointmentRepo(db *mongo.Database, timeout time.Duration) (*MongoAppointmentRepo, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments"), timeout: timeout}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("appointment repository: %w", err)
	}
	return repo, nil
}

func (r *MongoAppointmentRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, r.timeout)
}

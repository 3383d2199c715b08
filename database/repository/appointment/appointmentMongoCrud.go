package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("appointment for doctor %s at %s %s: %w", appt.DocID, appt.SlotDate, appt.SlotTime, database.ErrConflict)
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("appointment %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) setFlag(ctx context.Context, filter bson.M, field string) (bool, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{field: true}})
	if err != nil {
		return false, fmt.Errorf("failed to set %s on appointment %v: %w", field, filter["id"], err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoAppointmentRepo) MarkCancelled(ctx context.Context, id string) (bool, error) {
	return r.setFlag(ctx, bson.M{"id": id, "cancelled": false}, "cancelled")
}

func (r *MongoAppointmentRepo) MarkCompleted(ctx context.Context, id string) (bool, error) {
	return r.setFlag(ctx, bson.M{"id": id, "cancelled": false, "isCompleted": false}, "isCompleted")
}

func (r *MongoAppointmentRepo) MarkPaid(ctx context.Context, id string) (bool, error) {
	return r.setFlag(ctx, bson.M{"id": id, "cancelled": false, "payment": false}, "payment")
}

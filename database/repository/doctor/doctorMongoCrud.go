package doctorRepo

import (
	"context"
	"errors"
	"fmt"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new doctor document.
func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if doctor.SlotsBooked == nil {
		doctor.SlotsBooked = models.SlotsBooked{}
	}
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("doctor with email %s already exists: %w", doctor.Email, database.ErrConflict)
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// ToggleAvailability flips the available flag atomically with an update pipeline.
func (r *MongoDoctorRepo) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "available", Value: bson.D{{Key: "$not", Value: bson.A{"$available"}}}}}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"available": 1})

	var out struct {
		Available bool `bson:"available"`
	}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, pipeline, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, fmt.Errorf("doctor %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle availability for doctor %s: %w", id, err)
	}
	return out.Available, nil
}

// UpdateProfile applies the non-nil fields of update and returns the new document.
func (r *MongoDoctorRepo) UpdateProfile(ctx context.Context, id string, update models.DoctorProfileUpdate) (*models.Doctor, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	set := bson.M{}
	if update.Fees != nil {
		set["fees"] = *update.Fees
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doctor models.Doctor
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("doctor %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update doctor %s: %w", id, err)
	}
	return &doctor, nil
}

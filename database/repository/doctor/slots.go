package doctorRepo

import (
	"context"
	"fmt"
	"strings"

	"medibook/database"

	"go.mongodb.org/mongo-driver/bson"
)

// slotField returns the dotted path of a date-key inside slots_booked. Date-keys are
// normalized upstream; anything that could escape the sub-document is refused.
func slotField(dateKey string) (string, error) {
	if dateKey == "" || strings.ContainsAny(dateKey, ".$") {
		return "", fmt.Errorf("invalid date-key %q", dateKey)
	}
	return "slots_booked." + dateKey, nil
}

// ReserveSlot is the single conditional write that establishes a reservation. The
// filter only matches when the doctor exists, is available and does not yet hold
// label for dateKey, so two concurrent reservations of the same slot cannot both
// match. $ne against an array field matches when no element equals label, and also
// when the date-key is absent.
func (r *MongoDoctorRepo) ReserveSlot(ctx context.Context, id, dateKey, label string) error {
	field, err := slotField(dateKey)
	if err != nil {
		return err
	}
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	filter := bson.M{
		"id":        id,
		"available": true,
		field:       bson.M{"$ne": label},
	}
	update := bson.M{"$push": bson.M{field: label}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot %s %s for doctor %s: %w", dateKey, label, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reserve slot %s %s for doctor %s: %w", dateKey, label, id, database.ErrConflict)
	}
	return nil
}

// ReleaseSlot pulls label out of slots_booked[dateKey].
func (r *MongoDoctorRepo) ReleaseSlot(ctx context.Context, id, dateKey, label string) (bool, error) {
	field, err := slotField(dateKey)
	if err != nil {
		return false, err
	}
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$pull": bson.M{field: label}})
	if err != nil {
		return false, fmt.Errorf("failed to release slot %s %s for doctor %s: %w", dateKey, label, id, err)
	}
	if res.MatchedCount == 0 {
		return false, fmt.Errorf("release slot for doctor %s: %w", id, database.ErrNotFound)
	}
	return res.ModifiedCount > 0, nil
}

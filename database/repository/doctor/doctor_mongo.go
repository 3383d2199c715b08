package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoDoctorRepo creates a DoctorRepository over the "doctors" collection of db.
func NewMongoDoctorRepo(db *mongo.Database, timeout time.Duration) (*MongoDoctorRepo, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	repo := &MongoDoctorRepo{coll: db.Collection("doctors"), timeout: timeout}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("doctor repository: %w", err)
	}
	return repo, nil
}

func (r *MongoDoctorRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, r.timeout)
}

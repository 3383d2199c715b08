package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoUserRepo creates a UserRepository over the "users" collection of db.
func NewMongoUserRepo(db *mongo.Database, timeout time.Duration) (*MongoUserRepo, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	repo := &MongoUserRepo{coll: db.Collection("users"), timeout: timeout}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	return repo, nil
}

// newContext creates a context bounded by the repository timeout.
func (r *MongoUserRepo) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, r.timeout)
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by its email.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return user, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with email %s already exists: %w", user.Email, database.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateProfile modifies the editable fields of a user document.
func (r *MongoUserRepo) UpdateProfile(ctx context.Context, id string, update models.UserProfileUpdate) (*models.User, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	set := bson.M{
		"name":      update.Name,
		"phone":     update.Phone,
		"dob":       update.DOB,
		"gender":    update.Gender,
		"updatedAt": time.Now(),
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Image != "" {
		set["image"] = update.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return &user, nil
}

// Count returns the number of registered users.
func (r *MongoUserRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

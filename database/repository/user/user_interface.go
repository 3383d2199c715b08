package userRepo

import (
	"context"

	"medibook/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID; database.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; database.ErrNotFound when missing.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record; database.ErrConflict on a duplicate email.
	Create(ctx context.Context, user *models.User) error
	// UpdateProfile overwrites the editable profile fields.
	UpdateProfile(ctx context.Context, id string, update models.UserProfileUpdate) (*models.User, error)
	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}

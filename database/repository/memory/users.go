package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medibook/database"
	"medibook/models"
)

// Users is an in-memory UserRepository.
type Users struct {
	mu   sync.Mutex
	byID map[string]*models.User
}

func NewUsers() *Users {
	return &Users{byID: make(map[string]*models.User)}
}

func (r *Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, database.ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, database.ErrNotFound)
}

func (r *Users) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email || u.ID == user.ID {
			return fmt.Errorf("user %s: %w", user.Email, database.ErrConflict)
		}
	}
	stored := *user
	r.byID[user.ID] = &stored
	return nil
}

func (r *Users) UpdateProfile(ctx context.Context, id string, update models.UserProfileUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, database.ErrNotFound)
	}
	u.Name = update.Name
	u.Phone = update.Phone
	u.DOB = update.DOB
	u.Gender = update.Gender
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.Image != "" {
		u.Image = update.Image
	}
	u.UpdatedAt = time.Now()
	out := *u
	return &out, nil
}

func (r *Users) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

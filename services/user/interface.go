package user

import (
	"context"
	"io"
	"time"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/storage"

	"go.uber.org/zap"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)

	// Profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate, image io.Reader) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Images   storage.ImageStore
	TokenTTL time.Duration
	Logger   *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, images storage.ImageStore, tokenTTL time.Duration, logger *zap.Logger) *DefaultUserService {
	if images == nil {
		images = storage.UnavailableStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &DefaultUserService{Repo: repo, Images: images, TokenTTL: tokenTTL, Logger: logger}
}

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse contains the user's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

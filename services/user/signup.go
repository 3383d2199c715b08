package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the sign-up data, stores the user with a bcrypt hash and returns
// a token so the client is signed in straight away.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Email == "" || req.Password == "" {
		return nil, utils.NewAppError(utils.KindValidation, "All fields are required", nil)
	}
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := VerifyPasswordStrength(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, utils.NewAppError(utils.KindConflict, "Email already in use", nil)
	} else if !errors.Is(err, database.ErrNotFound) {
		s.Logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Registration failed, please try again", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Registration failed, please try again", err)
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Gender:       "Not Selected",
		DOB:          "Not Selected",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, &userObj); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return nil, utils.NewAppError(utils.KindConflict, "Email already in use", nil)
		}
		s.Logger.Error("Register: failed to create user", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Registration failed, please try again", err)
	}

	token, err := utils.GenerateToken(userObj.ID, models.RoleUser, s.TokenTTL)
	if err != nil {
		s.Logger.Error("Register: failed to generate auth token", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Registration failed, please try again", err)
	}
	s.Logger.Info("User registered", zap.String("userId", userObj.ID))
	return &AuthResponse{ID: userObj.ID, Token: token, Name: userObj.Name, Email: userObj.Email}, nil
}

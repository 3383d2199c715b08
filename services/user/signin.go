package user

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = utils.NewAppError(utils.KindInvalidCredentials, "Invalid email or password", nil)

// Login checks the password and issues a user token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email, err := NormalizeEmail(email)
	if err != nil || password == "" {
		return nil, errInvalidCredentials
	}

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.Logger.Error("Login: failed to fetch user", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Authentication failed, please try again", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, models.RoleUser, s.TokenTTL)
	if err != nil {
		s.Logger.Error("Login: failed to generate auth token", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Authentication failed, please try again", err)
	}
	return &AuthResponse{ID: userRec.ID, Token: token, Name: userRec.Name, Email: userRec.Email}, nil
}

package doctor

import (
	"context"
	"errors"
	"strings"

	"medibook/database"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = utils.NewAppError(utils.KindInvalidCredentials, "Invalid credentials", nil)

func (s *DefaultDoctorService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errInvalidCredentials
	}
	doc, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.Logger.Error("Login: failed to fetch doctor", zap.Error(err))
		return nil, utils.NewAppError(utils.KindPersistence, "Authentication failed, please try again", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	token, err := utils.GenerateToken(doc.ID, models.RoleDoctor, s.TokenTTL)
	if err != nil {
		return nil, utils.NewAppError(utils.KindPersistence, "Authentication failed, please try again", err)
	}
	return &AuthResponse{ID: doc.ID, Token: token, Name: doc.Name}, nil
}

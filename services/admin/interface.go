package admin

import (
	"context"
	"time"

	"medibook/database/repository"
	"medibook/models"

	"go.uber.org/zap"
)

type AdminService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Dashboard(ctx context.Context) (*models.AdminDashboard, error)
}

// Credentials are the single admin account configured through ADMIN_EMAIL and
// ADMIN_PASSWORD.
type Credentials struct {
	Email    string
	Password string
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repos       *repository.Repositories
	Credentials Credentials
	TokenTTL    time.Duration
	Logger      *zap.Logger
}

func NewAdminService(repos *repository.Repositories, creds Credentials, tokenTTL time.Duration, logger *zap.Logger) *DefaultAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &DefaultAdminService{Repos: repos, Credentials: creds, TokenTTL: tokenTTL, Logger: logger}
}

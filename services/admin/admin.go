package admin

import (
	"context"
	"crypto/subtle"
	"strings"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

const latestAppointments = 5

// Login checks the configured credentials and issues an admin token whose subject
// is the admin email. An unconfigured admin account never matches.
func (s *DefaultAdminService) Login(ctx context.Context, email, password string) (string, error) {
	want := s.Credentials
	if want.Email == "" || want.Password == "" {
		s.Logger.Warn("Admin login attempted but ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		return "", utils.NewAppError(utils.KindInvalidCredentials, "Invalid credentials", nil)
	}
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(strings.ToLower(want.Email))) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(want.Password)) == 1
	if !emailOK || !passOK {
		return "", utils.NewAppError(utils.KindInvalidCredentials, "Invalid credentials", nil)
	}
	token, err := utils.GenerateToken(strings.ToLower(want.Email), models.RoleAdmin, s.TokenTTL)
	if err != nil {
		return "", utils.NewAppError(utils.KindPersistence, "Failed to issue token", err)
	}
	return token, nil
}

// Dashboard reports platform counts and the most recent appointments.
func (s *DefaultAdminService) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	doctors, err := s.Repos.Doctors.Count(ctx)
	if err != nil {
		return nil, s.persistence("doctors", err)
	}
	appointments, err := s.Repos.Appointments.Count(ctx)
	if err != nil {
		return nil, s.persistence("appointments", err)
	}
	patients, err := s.Repos.Users.Count(ctx)
	if err != nil {
		return nil, s.persistence("users", err)
	}
	latest, err := s.Repos.Appointments.Latest(ctx, latestAppointments)
	if err != nil {
		return nil, s.persistence("latest appointments", err)
	}
	return &models.AdminDashboard{
		Doctors:            doctors,
		Appointments:       appointments,
		Patients:           patients,
		LatestAppointments: latest,
	}, nil
}

func (s *DefaultAdminService) persistence(what string, err error) error {
	s.Logger.Error("Dashboard: failed to load "+what, zap.Error(err))
	return utils.NewAppError(utils.KindPersistence, "Failed to load dashboard", err)
}

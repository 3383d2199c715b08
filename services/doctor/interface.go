package doctor

import (
	"context"
	"io"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/storage"
	"medibook/utils"

	"go.uber.org/zap"
)

type DoctorService interface {
	// Onboarding and authentication
	Create(ctx context.Context, req CreateDoctorRequest, image io.Reader) (*models.Doctor, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)

	// Listings
	ListPublic(ctx context.Context) ([]models.PublicDoctor, error)
	ListAll(ctx context.Context) ([]models.Doctor, error)

	// Account management
	GetProfile(ctx context.Context, docID string) (*models.Doctor, error)
	UpdateProfile(ctx context.Context, docID string, update models.DoctorProfileUpdate) (*models.Doctor, error)
	ToggleAvailability(ctx context.Context, docID string) (bool, error)
	Dashboard(ctx context.Context, docID string) (*models.DoctorDashboard, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo         doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Images       storage.ImageStore
	Cache        utils.Cache
	CacheTTL     time.Duration
	TokenTTL     time.Duration
	Logger       *zap.Logger
}

func NewDoctorService(
	repo doctorRepo.DoctorRepository,
	appointments appointmentRepo.AppointmentRepository,
	images storage.ImageStore,
	cache utils.Cache,
	logger *zap.Logger,
) *DefaultDoctorService {
	if images == nil {
		images = storage.UnavailableStore{}
	}
	if cache == nil {
		cache = utils.NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDoctorService{
		Repo:         repo,
		Appointments: appointments,
		Images:       images,
		Cache:        cache,
		CacheTTL:     10 * time.Minute,
		TokenTTL:     7 * 24 * time.Hour,
		Logger:       logger,
	}
}

// CreateDoctorRequest is the admin onboarding form.
type CreateDoctorRequest struct {
	Name       string         `json:"name" form:"name" binding:"required"`
	Email      string         `json:"email" form:"email" binding:"required"`
	Password   string         `json:"password" form:"password" binding:"required"`
	Speciality string         `json:"speciality" form:"speciality" binding:"required"`
	Degree     string         `json:"degree" form:"degree" binding:"required"`
	Experience string         `json:"experience" form:"experience" binding:"required"`
	About      string         `json:"about" form:"about" binding:"required"`
	Fees       float64        `json:"fees" form:"fees" binding:"required"`
	Address    models.Address `json:"address" form:"-"`
	Image      string         `json:"image" form:"-"`
}

// AuthResponse is returned by doctor login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
}

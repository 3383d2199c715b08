package booking

import (
	"context"
	"time"

	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// BookingService defines the appointment lifecycle: reserving a slot, cancelling it
// from any of the three consoles, completing it, and reading slot availability.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	CancelByUser(ctx context.Context, userID, appointmentID string) (*CancelResult, error)
	CancelByDoctor(ctx context.Context, docID, appointmentID string) (*CancelResult, error)
	CancelByAdmin(ctx context.Context, appointmentID string) (*CancelResult, error)
	Complete(ctx context.Context, docID, appointmentID string) (*models.Appointment, error)

	BookedSlots(ctx context.Context, docID string) ([]string, error)
	AvailableSlots(ctx context.Context, docID string) (*AvailableSlots, error)

	UserAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	DoctorAppointments(ctx context.Context, docID string) ([]models.Appointment, error)
	AllAppointments(ctx context.Context) ([]models.Appointment, error)
}

// CancelResult tells the caller whether the call changed anything.
type CancelResult struct {
	Appointment      *models.Appointment `json:"appointment"`
	AlreadyCancelled bool                `json:"alreadyCancelled"`
	SlotReleased     bool                `json:"slotReleased"`
}

// AvailableSlots is the slot picker payload for one doctor.
type AvailableSlots struct {
	DocID     string            `json:"docId"`
	Available bool              `json:"available"`
	Days      []models.DaySlots `json:"days"`
}

// DefaultBookingService implements BookingService on top of the Mongo repositories.
type DefaultBookingService struct {
	Doctors      repository.DoctorRepository
	Appointments repository.AppointmentRepository
	Users        repository.UserRepository
	Cache        utils.Cache
	CacheTTL     time.Duration
	Policy       SlotPolicy
	Logger       *zap.Logger
	// Now is overridable in tests.
	Now func() time.Time
}

// NewBookingService wires the service with the default slot policy and a no-op cache.
func NewBookingService(repos *repository.Repositories, cache utils.Cache, policy SlotPolicy, logger *zap.Logger) *DefaultBookingService {
	if cache == nil {
		cache = utils.NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Doctors:      repos.Doctors,
		Appointments: repos.Appointments,
		Users:        repos.Users,
		Cache:        cache,
		CacheTTL:     10 * time.Minute,
		Policy:       policy,
		Logger:       logger,
		Now:          time.Now,
	}
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) cache() utils.Cache {
	if s.Cache == nil {
		return utils.NoopCache{}
	}
	return s.Cache
}

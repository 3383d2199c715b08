package doctorRepo

import (
	"context"

	"medibook/models"
)

// DoctorRepository defines methods for doctor data access, including the booked-slot
// map that backs the booking flow.
type DoctorRepository interface {
	// Create inserts a new doctor. A nil slot map is stored as an empty document.
	Create(ctx context.Context, doctor *models.Doctor) error
	// GetByID retrieves a doctor; database.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// GetByEmail retrieves a doctor by login email; database.ErrNotFound when missing.
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	// GetAll lists every doctor.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Count returns the number of doctors.
	Count(ctx context.Context) (int64, error)
	// ToggleAvailability flips the available flag and returns the new value.
	ToggleAvailability(ctx context.Context, id string) (bool, error)
	// UpdateProfile applies the non-nil fields of update.
	UpdateProfile(ctx context.Context, id string, update models.DoctorProfileUpdate) (*models.Doctor, error)

	// ReserveSlot appends label to slots_booked[dateKey] only when the doctor is
	// available and label is not already present. database.ErrConflict otherwise.
	ReserveSlot(ctx context.Context, id, dateKey, label string) error
	// ReleaseSlot removes label from slots_booked[dateKey]. It reports whether the
	// document was modified; a missing label is not an error.
	ReleaseSlot(ctx context.Context, id, dateKey, label string) (bool, error)
}

package appointmentRepo

import (
	"context"

	"medibook/models"
)

// AppointmentRepository defines methods for appointment data access. Flag setters are
// conditional and report whether they changed the document, so callers can treat
// repeated calls as no-ops.
type AppointmentRepository interface {
	// Create inserts a new appointment. database.ErrConflict when another
	// non-cancelled appointment already holds the same doctor/date/time.
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment; database.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByUser returns a user's appointments, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// ListByDoctor returns a doctor's appointments, oldest first.
	ListByDoctor(ctx context.Context, docID string) ([]models.Appointment, error)
	// ListAll returns every appointment, oldest first.
	ListAll(ctx context.Context) ([]models.Appointment, error)
	// Latest returns up to n appointments, newest first.
	Latest(ctx context.Context, n int64) ([]models.Appointment, error)
	// Count returns the number of appointments.
	Count(ctx context.Context) (int64, error)

	// MarkCancelled sets cancelled when it is still false.
	MarkCancelled(ctx context.Context, id string) (bool, error)
	// MarkCompleted sets isCompleted on a non-cancelled appointment.
	MarkCompleted(ctx context.Context, id string) (bool, error)
	// MarkPaid sets payment on a non-cancelled appointment.
	MarkPaid(ctx context.Context, id string) (bool, error)
}

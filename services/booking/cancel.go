package booking

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"

	"go.uber.org/zap"
)

// CancelByUser cancels an appointment owned by userID.
func (s *DefaultBookingService) CancelByUser(ctx context.Context, userID, appointmentID string) (*CancelResult, error) {
	appt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != userID {
		return nil, ErrUnauthorized
	}
	return s.cancel(ctx, appt)
}

// CancelByDoctor cancels an appointment assigned to docID.
func (s *DefaultBookingService) CancelByDoctor(ctx context.Context, docID, appointmentID string) (*CancelResult, error) {
	appt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.DocID != docID {
		return nil, ErrForbidden
	}
	return s.cancel(ctx, appt)
}

// CancelByAdmin cancels any appointment.
func (s *DefaultBookingService) CancelByAdmin(ctx context.Context, appointmentID string) (*CancelResult, error) {
	appt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, appt)
}

// cancel flips the flag first and releases the slot only when this call did the flip,
// so a repeated cancel never frees a slot that a newer booking holds.
func (s *DefaultBookingService) cancel(ctx context.Context, appt *models.Appointment) (*CancelResult, error) {
	logger := s.log().With(zap.String("appointmentId", appt.ID), zap.String("docId", appt.DocID))

	changed, err := s.Appointments.MarkCancelled(ctx, appt.ID)
	if err != nil {
		logger.Error("Failed to cancel appointment", zap.Error(err))
		return nil, persistence("Failed to cancel appointment", err)
	}
	appt.Cancelled = true
	if !changed {
		return &CancelResult{Appointment: appt, AlreadyCancelled: true}, nil
	}

	released, err := s.Doctors.ReleaseSlot(ctx, appt.DocID, appt.SlotDate, appt.SlotTime)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			logger.Warn("Doctor missing while releasing slot")
			return &CancelResult{Appointment: appt}, nil
		}
		logger.Error("Appointment cancelled but slot release failed", zap.Error(err))
		return nil, persistence("Appointment cancelled but the slot could not be released", err)
	}
	s.invalidate(ctx, appt.DocID)
	logger.Info("Appointment cancelled", zap.Bool("slotReleased", released))
	return &CancelResult{Appointment: appt, SlotReleased: released}, nil
}

// Complete marks an appointment as attended. Only the assigned doctor may do this.
func (s *DefaultBookingService) Complete(ctx context.Context, docID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.DocID != docID {
		return nil, ErrForbidden
	}
	if appt.Cancelled {
		return nil, validation("Cancelled appointments cannot be completed", nil)
	}
	if appt.IsCompleted {
		return appt, nil
	}

	changed, err := s.Appointments.MarkCompleted(ctx, appt.ID)
	if err != nil {
		return nil, persistence("Failed to complete appointment", err)
	}
	if !changed {
		// Lost a race with a cancel or another complete.
		current, err := s.loadAppointment(ctx, appt.ID)
		if err != nil {
			return nil, err
		}
		if current.Cancelled {
			return nil, validation("Cancelled appointments cannot be completed", nil)
		}
		return current, nil
	}
	appt.IsCompleted = true
	s.log().Info("Appointment completed", zap.String("appointmentId", appt.ID))
	return appt, nil
}

func (s *DefaultBookingService) loadAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, validation("Missing appointment id", nil)
	}
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, appointmentNotFound()
		}
		return nil, persistence("Failed to load appointment", err)
	}
	return appt, nil
}

package booking

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
)

const compensationTimeout = 5 * time.Second

// Book reserves the slot on the doctor first and only then writes the appointment.
// The reservation is a single conditional update, so two concurrent requests for the
// same slot cannot both succeed.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}
	logger := s.log().With(
		zap.String("docId", req.DocID),
		zap.String("userId", req.UserID),
		zap.String("slotDate", req.SlotDate),
		zap.String("slotTime", req.SlotTime),
	)

	doctor, err := s.Doctors.GetByID(ctx, req.DocID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, doctorUnavailable()
		}
		logger.Error("Failed to load doctor", zap.Error(err))
		return nil, persistence("Failed to load doctor", err)
	}
	if !doctor.Available {
		return nil, doctorUnavailable()
	}
	if doctor.SlotsBooked.Has(req.SlotDate, req.SlotTime) {
		return nil, slotAlreadyBooked()
	}

	user, err := s.Users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "User not found", nil)
		}
		logger.Error("Failed to load user", zap.Error(err))
		return nil, persistence("Failed to load user", err)
	}

	if err := s.Doctors.ReserveSlot(ctx, req.DocID, req.SlotDate, req.SlotTime); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return nil, s.classifyReserveConflict(ctx, req.DocID)
		}
		logger.Error("Failed to reserve slot", zap.Error(err))
		return nil, persistence("Failed to reserve slot", err)
	}

	appt := &models.Appointment{
		ID:       uuid.New().String(),
		UserID:   req.UserID,
		DocID:    req.DocID,
		SlotDate: req.SlotDate,
		SlotTime: req.SlotTime,
		UserData: user.Snapshot(),
		DocData:  doctor.Snapshot(),
		Amount:   doctor.Fees,
		Date:     s.now().UTC(),
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, database.ErrConflict) {
			// A live appointment already owns this slot, so the reservation stays.
			logger.Warn("Live appointment already holds slot")
			s.invalidate(ctx, req.DocID)
			return nil, slotAlreadyBooked()
		}
		logger.Error("Failed to create appointment, releasing slot", zap.Error(err))
		s.compensate(ctx, req, logger)
		return nil, persistence("Failed to create appointment", err)
	}

	s.invalidate(ctx, req.DocID)
	logger.Info("Appointment booked", zap.String("appointmentId", appt.ID))
	return appt, nil
}

// classifyReserveConflict re-reads the doctor to tell a lost race from a doctor that
// went unavailable in between.
func (s *DefaultBookingService) classifyReserveConflict(ctx context.Context, docID string) error {
	doctor, err := s.Doctors.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return doctorUnavailable()
		}
		return persistence("Failed to load doctor", err)
	}
	if !doctor.Available {
		return doctorUnavailable()
	}
	return slotAlreadyBooked()
}

// compensate releases a reservation whose appointment could not be written. It runs
// detached from the request context. A failure leaves an orphaned reservation, which
// only hides the slot.
func (s *DefaultBookingService) compensate(ctx context.Context, req models.BookingRequest, logger *zap.Logger) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()
	if _, err := s.Doctors.ReleaseSlot(cctx, req.DocID, req.SlotDate, req.SlotTime); err != nil {
		logger.Error("Failed to release slot after appointment write failure; slot is orphaned", zap.Error(err))
		return
	}
	s.invalidate(cctx, req.DocID)
}

func normalizeRequest(req models.BookingRequest) (models.BookingRequest, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.DocID = strings.TrimSpace(req.DocID)
	if req.UserID == "" {
		return req, validation("Missing user", nil)
	}
	if req.DocID == "" {
		return req, validation("Missing doctor", nil)
	}
	dateKey, err := utils.NormalizeDateKey(req.SlotDate)
	if err != nil {
		return req, validation("Invalid slot date", err)
	}
	label, err := utils.NormalizeTimeLabel(req.SlotTime)
	if err != nil {
		return req, validation("Invalid slot time", err)
	}
	req.SlotDate = dateKey
	req.SlotTime = label
	return req, nil
}

package payment

import (
	"context"
	"errors"
	"strings"

	"medibook/database"
	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// PaymentService bridges appointments to gateway orders. The appointment id is the
// order receipt, which is how a verified order finds its appointment again.
type PaymentService interface {
	CreateOrder(ctx context.Context, userID, appointmentID string) (*models.PaymentOrder, error)
	Verify(ctx context.Context, userID, orderID string) (*models.Appointment, error)
}

type DefaultPaymentService struct {
	Appointments repository.AppointmentRepository
	Gateway      Gateway
	Currency     string
	Logger       *zap.Logger
}

func NewPaymentService(appointments repository.AppointmentRepository, gateway Gateway, currency string, logger *zap.Logger) *DefaultPaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "INR"
	}
	return &DefaultPaymentService{Appointments: appointments, Gateway: gateway, Currency: currency, Logger: logger}
}

func (s *DefaultPaymentService) CreateOrder(ctx context.Context, userID, appointmentID string) (*models.PaymentOrder, error) {
	appt, err := s.appointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != userID {
		return nil, utils.NewAppError(utils.KindUnauthorized, "Unauthorized action", nil)
	}
	if appt.Cancelled {
		return nil, utils.NewAppError(utils.KindAppointmentCancelled, "Appointment cancelled or not found", nil)
	}
	if appt.Payment {
		return nil, utils.NewAppError(utils.KindValidation, "Appointment already paid", nil)
	}

	order, err := s.Gateway.CreateOrder(ctx, utils.ToSubunits(appt.Amount), strings.ToUpper(s.Currency), appt.ID)
	if err != nil {
		s.Logger.Error("Failed to create payment order", zap.String("appointmentId", appt.ID), zap.Error(err))
		return nil, utils.NewAppError(utils.KindUpstream, "Failed to create payment order", err)
	}
	s.Logger.Info("Payment order created", zap.String("appointmentId", appt.ID), zap.String("orderId", order.ID))
	return order, nil
}

// Verify asks the gateway for the order and marks the appointment paid when the
// order is settled. Repeating it after success is a no-op.
func (s *DefaultPaymentService) Verify(ctx context.Context, userID, orderID string) (*models.Appointment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, utils.NewAppError(utils.KindValidation, "Missing order id", nil)
	}
	order, err := s.Gateway.FetchOrder(ctx, orderID)
	if err != nil {
		s.Logger.Error("Failed to fetch payment order", zap.String("orderId", orderID), zap.Error(err))
		return nil, utils.NewAppError(utils.KindUpstream, "Failed to fetch payment order", err)
	}
	if order.Status != models.OrderStatusPaid {
		return nil, utils.NewAppError(utils.KindPaymentNotCompleted, "Payment failed", nil)
	}

	appt, err := s.appointment(ctx, order.Receipt)
	if err != nil {
		return nil, err
	}
	if userID != "" && appt.UserID != userID {
		return nil, utils.NewAppError(utils.KindUnauthorized, "Unauthorized action", nil)
	}
	if appt.Cancelled {
		s.Logger.Warn("Paid order for a cancelled appointment", zap.String("appointmentId", appt.ID), zap.String("orderId", orderID))
		return nil, utils.NewAppError(utils.KindAppointmentCancelled, "Appointment cancelled", nil)
	}
	if appt.Payment {
		return appt, nil
	}

	changed, err := s.Appointments.MarkPaid(ctx, appt.ID)
	if err != nil {
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to record payment", err)
	}
	if !changed {
		// Lost a race with a cancel or a concurrent verify.
		current, err := s.appointment(ctx, appt.ID)
		if err != nil {
			return nil, err
		}
		if current.Cancelled {
			s.Logger.Warn("Appointment cancelled while verifying payment", zap.String("appointmentId", appt.ID), zap.String("orderId", orderID))
			return nil, utils.NewAppError(utils.KindAppointmentCancelled, "Appointment cancelled", nil)
		}
		return current, nil
	}
	appt.Payment = true
	if order.Amount != utils.ToSubunits(appt.Amount) {
		s.Logger.Warn("Settled amount differs from appointment fee",
			zap.String("appointmentId", appt.ID),
			zap.Float64("paid", utils.FromSubunits(order.Amount)),
			zap.Float64("fee", appt.Amount))
	}
	s.Logger.Info("Payment verified", zap.String("appointmentId", appt.ID), zap.String("orderId", orderID))
	return appt, nil
}

func (s *DefaultPaymentService) appointment(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, utils.NewAppError(utils.KindValidation, "Missing appointment id", nil)
	}
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindAppointmentNotFound, "Appointment not found", nil)
		}
		return nil, utils.NewAppError(utils.KindPersistence, "Failed to load appointment", err)
	}
	return appt, nil
}

package booking

import (
	"medibook/utils"
)

// Sentinels for errors.Is; they match any AppError of the same kind.
var (
	ErrDoctorUnavailable    = utils.NewAppError(utils.KindDoctorUnavailable, "Doctor not available", nil)
	ErrSlotAlreadyBooked    = utils.NewAppError(utils.KindSlotAlreadyBooked, "Slot not available", nil)
	ErrAppointmentNotFound  = utils.NewAppError(utils.KindAppointmentNotFound, "Appointment not found", nil)
	ErrUnauthorized         = utils.NewAppError(utils.KindUnauthorized, "Unauthorized action", nil)
	ErrForbidden            = utils.NewAppError(utils.KindForbidden, "Appointment belongs to another doctor", nil)
	ErrValidation           = utils.NewAppError(utils.KindValidation, "Invalid request", nil)
	ErrPersistence          = utils.NewAppError(utils.KindPersistence, "Storage failure", nil)
	ErrAppointmentCancelled = utils.NewAppError(utils.KindAppointmentCancelled, "Appointment cancelled", nil)
)

func doctorUnavailable() error {
	return utils.NewAppError(utils.KindDoctorUnavailable, "Doctor not available", nil)
}

func slotAlreadyBooked() error {
	return utils.NewAppError(utils.KindSlotAlreadyBooked, "Slot not available", nil)
}

func appointmentNotFound() error {
	return utils.NewAppError(utils.KindAppointmentNotFound, "Appointment not found", nil)
}

func validation(msg string, err error) error {
	return utils.NewAppError(utils.KindValidation, msg, err)
}

func persistence(msg string, err error) error {
	return utils.NewAppError(utils.KindPersistence, msg, err)
}

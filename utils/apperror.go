package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the HTTP layer can pick a status without string
// matching.
type ErrorKind string

const (
	KindDoctorUnavailable    ErrorKind = "DoctorUnavailable"
	KindSlotAlreadyBooked    ErrorKind = "SlotAlreadyBooked"
	KindAppointmentNotFound  ErrorKind = "AppointmentNotFound"
	KindAppointmentCancelled ErrorKind = "AppointmentCancelled"
	KindPaymentNotCompleted  ErrorKind = "PaymentNotCompleted"
	KindUnauthorized         ErrorKind = "Unauthorized"
	KindForbidden            ErrorKind = "Forbidden"
	KindInvalidCredentials   ErrorKind = "InvalidCredentials"
	KindNotFound             ErrorKind = "NotFound"
	KindConflict             ErrorKind = "Conflict"
	KindValidation           ErrorKind = "ValidationError"
	KindPersistence          ErrorKind = "PersistenceError"
	KindUpstream             ErrorKind = "UpstreamError"
)

// AppError is the failure variant returned by every service operation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches any AppError of the same kind, so sentinels built with NewAppError can be
// used with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

// NewAppError builds an AppError; err may be nil.
func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err, defaulting to PersistenceError for anything that is
// not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

package handlers

import (
	"net/http"

	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps an error kind to its HTTP status. Slot conflicts stay 400 for the
// existing clients.
func statusFor(kind utils.ErrorKind) int {
	switch kind {
	case utils.KindValidation,
		utils.KindDoctorUnavailable,
		utils.KindSlotAlreadyBooked,
		utils.KindAppointmentCancelled,
		utils.KindPaymentNotCompleted:
		return http.StatusBadRequest
	case utils.KindAppointmentNotFound, utils.KindNotFound:
		return http.StatusNotFound
	case utils.KindUnauthorized, utils.KindForbidden:
		return http.StatusForbidden
	case utils.KindInvalidCredentials:
		return http.StatusUnauthorized
	case utils.KindConflict:
		return http.StatusConflict
	case utils.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a service error as the failure envelope.
func respondError(c *gin.Context, err error) {
	kind := utils.KindOf(err)
	status := statusFor(kind)
	if status >= http.StatusInternalServerError {
		getLogger(c).Error("Request failed", zap.String("kind", string(kind)), zap.Error(err))
	}
	utils.JSONError(c, status, string(kind), utils.MessageOf(err))
}

// badRequest renders a binding failure.
func badRequest(c *gin.Context, message string) {
	utils.JSONError(c, http.StatusBadRequest, string(utils.KindValidation), message)
}

// respondOK renders the success envelope around payload.
func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

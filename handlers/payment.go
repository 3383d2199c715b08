package handlers

import (
	"net/http"

	"medibook/services/payment"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

type verifyPaymentRequest struct {
	OrderID string `json:"razorpay_order_id" binding:"required"`
}

// CreateOrder handles POST /api/user/payment-razorpay.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req appointmentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "appointmentId is required")
		return
	}
	order, err := h.Service.CreateOrder(c.Request.Context(), c.GetString(utils.CtxUserID), req.AppointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": order})
}

// Verify handles POST /api/user/verify-razorpay.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "razorpay_order_id is required")
		return
	}
	appt, err := h.Service.Verify(c.Request.Context(), c.GetString(utils.CtxUserID), req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Payment Successful", "appointment": appt})
}

package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the appointment endpoints of all three consoles.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	RegisterValidators()
	return &BookingHandler{Service: svc}
}

type bookAppointmentRequest struct {
	// UserID is accepted for older clients; the token identity always wins.
	UserID   string `json:"userId"`
	DocID    string `json:"docId" binding:"required"`
	SlotDate string `json:"slotDate" binding:"required,datekey"`
	SlotTime string `json:"slotTime" binding:"required,slottime"`
}

type appointmentIDRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
}

// BookAppointment handles POST /api/user/book-appointment.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "docId, slotDate (D_M_YYYY) and slotTime (h:mm AM) are required")
		return
	}
	appt, err := h.Service.Book(c.Request.Context(), models.BookingRequest{
		UserID:   c.GetString(utils.CtxUserID),
		DocID:    req.DocID,
		SlotDate: req.SlotDate,
		SlotTime: req.SlotTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"message": "Appointment Booked", "appointment": appt})
}

// ListUserAppointments handles GET /api/user/appointments.
func (h *BookingHandler) ListUserAppointments(c *gin.Context) {
	appts, err := h.Service.UserAppointments(c.Request.Context(), c.GetString(utils.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"appointments": appts})
}

// CancelUserAppointment handles POST /api/user/cancel-appointment.
func (h *BookingHandler) CancelUserAppointment(c *gin.Context) {
	h.cancel(c, func(id string) (*booking.CancelResult, error) {
		return h.Service.CancelByUser(c.Request.Context(), c.GetString(utils.CtxUserID), id)
	})
}

// CancelDoctorAppointment handles POST /api/doctor/cancel-appointment.
func (h *BookingHandler) CancelDoctorAppointment(c *gin.Context) {
	h.cancel(c, func(id string) (*booking.CancelResult, error) {
		return h.Service.CancelByDoctor(c.Request.Context(), c.GetString(utils.CtxDoctorID), id)
	})
}

// CancelAnyAppointment handles POST /api/admin/cancel-appointment.
func (h *BookingHandler) CancelAnyAppointment(c *gin.Context) {
	h.cancel(c, func(id string) (*booking.CancelResult, error) {
		return h.Service.CancelByAdmin(c.Request.Context(), id)
	})
}

func (h *BookingHandler) cancel(c *gin.Context, run func(id string) (*booking.CancelResult, error)) {
	var req appointmentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "appointmentId is required")
		return
	}
	res, err := run(req.AppointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"message":          "Appointment Cancelled",
		"alreadyCancelled": res.AlreadyCancelled,
		"slotReleased":     res.SlotReleased,
	})
}

// CompleteAppointment handles POST /api/doctor/complete-appointment.
func (h *BookingHandler) CompleteAppointment(c *gin.Context) {
	var req appointmentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "appointmentId is required")
		return
	}
	appt, err := h.Service.Complete(c.Request.Context(), c.GetString(utils.CtxDoctorID), req.AppointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Appointment Completed", "appointment": appt})
}

// ListDoctorAppointments handles GET /api/doctor/appointments.
func (h *BookingHandler) ListDoctorAppointments(c *gin.Context) {
	appts, err := h.Service.DoctorAppointments(c.Request.Context(), c.GetString(utils.CtxDoctorID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"appointments": appts})
}

// ListAllAppointments handles GET /api/admin/appointments.
func (h *BookingHandler) ListAllAppointments(c *gin.Context) {
	appts, err := h.Service.AllAppointments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"appointments": appts})
}

// BookedSlots handles GET /api/user/booked-slots/:docId.
func (h *BookingHandler) BookedSlots(c *gin.Context) {
	keys, err := h.Service.BookedSlots(c.Request.Context(), c.Param("docId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"bookedSlots": keys})
}

// AvailableSlots handles GET /api/user/available-slots/:docId.
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	res, err := h.Service.AvailableSlots(c.Request.Context(), c.Param("docId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"docId": res.DocID, "available": res.Available, "days": res.Days})
}

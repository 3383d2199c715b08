package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// List handles GET /api/doctor/list.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.Service.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"doctors": doctors})
}

// Login handles POST /api/doctor/login.
func (h *DoctorHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required")
		return
	}
	res, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"token": res.Token, "doctor": res})
}

// Dashboard handles GET /api/doctor/dashboard.
func (h *DoctorHandler) Dashboard(c *gin.Context) {
	dash, err := h.Service.Dashboard(c.Request.Context(), c.GetString(utils.CtxDoctorID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"dashData": dash})
}

// Profile handles GET /api/doctor/profile.
func (h *DoctorHandler) Profile(c *gin.Context) {
	doc, err := h.Service.GetProfile(c.Request.Context(), c.GetString(utils.CtxDoctorID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"profileData": doc})
}

// UpdateProfile handles POST /api/doctor/update-profile.
func (h *DoctorHandler) UpdateProfile(c *gin.Context) {
	var update models.DoctorProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "Invalid profile update")
		return
	}
	doc, err := h.Service.UpdateProfile(c.Request.Context(), c.GetString(utils.CtxDoctorID), update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Profile Updated", "profileData": doc})
}

// ChangeAvailability handles POST /api/doctor/change-availability for the signed-in
// doctor.
func (h *DoctorHandler) ChangeAvailability(c *gin.Context) {
	available, err := h.Service.ToggleAvailability(c.Request.Context(), c.GetString(utils.CtxDoctorID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Availability Changed", "available": available})
}

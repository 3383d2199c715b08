package handlers

import (
	"io"
	"net/http"

	"medibook/services/admin"
	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service admin.AdminService
	Doctors doctor.DoctorService
}

func NewAdminHandler(svc admin.AdminService, doctors doctor.DoctorService) *AdminHandler {
	return &AdminHandler{Service: svc, Doctors: doctors}
}

type docIDRequest struct {
	DocID string `json:"docId" binding:"required"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required")
		return
	}
	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"token": token})
}

// AddDoctor handles POST /api/admin/add-doctor (multipart, optional image).
func (h *AdminHandler) AddDoctor(c *gin.Context) {
	var req doctor.CreateDoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Missing details")
		return
	}
	addr, err := parseAddress(c.PostForm("address"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if addr != nil {
		req.Address = *addr
	}

	file, err := openImage(c, "image")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	var image io.Reader
	if file != nil {
		defer file.Close()
		image = file
	}

	doc, err := h.Doctors.Create(c.Request.Context(), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"message": "Doctor Added", "doctor": doc})
}

// AllDoctors handles GET /api/admin/all-doctors.
func (h *AdminHandler) AllDoctors(c *gin.Context) {
	doctors, err := h.Doctors.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"doctors": doctors})
}

// ChangeAvailability handles POST /api/admin/change-availability.
func (h *AdminHandler) ChangeAvailability(c *gin.Context) {
	var req docIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "docId is required")
		return
	}
	available, err := h.Doctors.ToggleAvailability(c.Request.Context(), req.DocID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Availability Changed", "available": available})
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"dashData": dash})
}

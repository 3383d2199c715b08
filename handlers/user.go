package handlers

import (
	"io"
	"net/http"

	"medibook/models"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}
	res, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"token": res.Token, "user": res})
}

// Login handles POST /api/user/login.
func (h *UserHandler) Login(c *gin.Context) {
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
	respondOK(c, http.StatusOK, gin.H{"token": res.Token, "user": res})
}

// GetProfile handles GET /api/user/get-profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Service.GetProfile(c.Request.Context(), c.GetString(utils.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"userData": u})
}

// UpdateProfile handles POST /api/user/update-profile (multipart, optional image).
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var update models.UserProfileUpdate
	if err := c.ShouldBind(&update); err != nil {
		badRequest(c, "Data Missing")
		return
	}
	addr, err := parseAddress(c.PostForm("address"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	update.Address = addr

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

	u, err := h.Service.UpdateProfile(c.Request.Context(), c.GetString(utils.CtxUserID), update, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Profile Updated", "userData": u})
}

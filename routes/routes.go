package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers patient endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)
		api.GET("/booked-slots/:docId", hb.Booking.BookedSlots)
		api.GET("/available-slots/:docId", hb.Booking.AvailableSlots)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.GET("/get-profile", hb.User.GetProfile)
		protected.POST("/update-profile", hb.User.UpdateProfile)
		protected.POST("/book-appointment", hb.Booking.BookAppointment)
		protected.GET("/appointments", hb.Booking.ListUserAppointments)
		protected.POST("/cancel-appointment", hb.Booking.CancelUserAppointment)
		protected.POST("/payment-razorpay", hb.Payment.CreateOrder)
		protected.POST("/verify-razorpay", hb.Payment.Verify)
	}
}

// RegisterDoctorRoutes registers doctor console endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctor")
	{
		api.GET("/list", hb.Doctor.List)
		api.POST("/login", hb.Doctor.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthDoctorMiddleware())
		protected.GET("/appointments", hb.Booking.ListDoctorAppointments)
		protected.POST("/complete-appointment", hb.Booking.CompleteAppointment)
		protected.POST("/cancel-appointment", hb.Booking.CancelDoctorAppointment)
		protected.POST("/change-availability", hb.Doctor.ChangeAvailability)
		protected.GET("/dashboard", hb.Doctor.Dashboard)
		protected.GET("/profile", hb.Doctor.Profile)
		protected.POST("/update-profile", hb.Doctor.UpdateProfile)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("/add-doctor", hb.Admin.AddDoctor)
		protected.GET("/all-doctors", hb.Admin.AllDoctors)
		protected.POST("/change-availability", hb.Admin.ChangeAvailability)
		protected.GET("/appointments", hb.Booking.ListAllAppointments)
		protected.POST("/cancel-appointment", hb.Booking.CancelAnyAppointment)
		protected.GET("/dashboard", hb.Admin.Dashboard)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the health monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"success": code == http.StatusOK, "status": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.UserTokenHeader, middleware.DoctorTokenHeader, middleware.AdminTokenHeader},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

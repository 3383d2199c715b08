package handlers

import (
	"medibook/services/admin"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/payment"
	"medibook/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	User    *UserHandler
	Doctor  *DoctorHandler
	Admin   *AdminHandler
	Booking *BookingHandler
	Payment *PaymentHandler
}

// Services is everything the handlers need.
type Services struct {
	Users    user.UserService
	Doctors  doctor.DoctorService
	Admin    admin.AdminService
	Bookings booking.BookingService
	Payments payment.PaymentService
}

func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		User:    NewUserHandler(s.Users),
		Doctor:  NewDoctorHandler(s.Doctors),
		Admin:   NewAdminHandler(s.Admin, s.Doctors),
		Booking: NewBookingHandler(s.Bookings),
		Payment: NewPaymentHandler(s.Payments),
	}
}

package repository

import (
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	userRepo "medibook/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces so wiring code needs a single import.
type (
	DoctorRepository      = doctorRepo.DoctorRepository
	AppointmentRepository = appointmentRepo.AppointmentRepository
	UserRepository        = userRepo.UserRepository
)

// Repositories bundles the Mongo-backed stores.
type Repositories struct {
	Doctors      DoctorRepository
	Appointments AppointmentRepository
	Users        UserRepository
}

// NewMongoRepositories builds every repository over db, creating indexes as it goes.
func NewMongoRepositories(db *mongo.Database, timeout time.Duration) (*Repositories, error) {
	doctors, err := doctorRepo.NewMongoDoctorRepo(db, timeout)
	if err != nil {
		return nil, err
	}
	appointments, err := appointmentRepo.NewMongoAppointmentRepo(db, timeout)
	if err != nil {
		return nil, err
	}
	users, err := userRepo.NewMongoUserRepo(db, timeout)
	if err != nil {
		return nil, err
	}
	return &Repositories{Doctors: doctors, Appointments: appointments, Users: users}, nil
}

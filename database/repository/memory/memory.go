// Package memory provides in-process repositories with the same conditional-write
// semantics as the Mongo stores. Tests across the services and handlers use them.
package memory

import (
	"medibook/database/repository"
)

// NewRepositories returns empty in-memory stores.
func NewRepositories() (*repository.Repositories, *Doctors, *Appointments, *Users) {
	doctors := NewDoctors()
	appointments := NewAppointments()
	users := NewUsers()
	return &repository.Repositories{Doctors: doctors, Appointments: appointments, Users: users}, doctors, appointments, users
}

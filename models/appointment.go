package models

import "time"

// Appointment is the booking record. It is never deleted; cancellation, completion
// and payment only flip flags.
type Appointment struct {
	ID          string         `bson:"id" json:"_id"`
	UserID      string         `bson:"userId" json:"userId"`
	DocID       string         `bson:"docId" json:"docId"`
	SlotDate    string         `bson:"slotDate" json:"slotDate"`
	SlotTime    string         `bson:"slotTime" json:"slotTime"`
	UserData    UserSnapshot   `bson:"userData" json:"userData"`
	DocData     DoctorSnapshot `bson:"docData" json:"docData"`
	Amount      float64        `bson:"amount" json:"amount"`
	Date        time.Time      `bson:"date" json:"date"`
	Cancelled   bool           `bson:"cancelled" json:"cancelled"`
	Payment     bool           `bson:"payment" json:"payment"`
	IsCompleted bool           `bson:"isCompleted" json:"isCompleted"`
}

// DoctorDashboard summarizes a doctor's appointments.
type DoctorDashboard struct {
	Earnings           float64       `json:"earnings"`
	Appointments       int           `json:"appointments"`
	Patients           int           `json:"patients"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

// AdminDashboard summarizes the whole platform.
type AdminDashboard struct {
	Doctors            int64         `json:"doctors"`
	Appointments       int64         `json:"appointments"`
	Patients           int64         `json:"patients"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

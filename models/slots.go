package models

import "time"

// Slot is one bookable candidate produced by the slot generator.
type Slot struct {
	DateTime time.Time `json:"datetime"`
	SlotDate string    `json:"slotDate"`
	SlotTime string    `json:"slotTime"`
}

// DaySlots is one day bucket of candidates, possibly empty.
type DaySlots struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Slots   []Slot `json:"slots"`
}

// BookingRequest is the validated input of the book operation.
type BookingRequest struct {
	UserID   string
	DocID    string
	SlotDate string
	SlotTime string
}

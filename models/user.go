package models

import "time"

// User is a patient account.
type User struct {
	ID           string    `bson:"id" json:"_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	Image        string    `bson:"image" json:"image"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      Address   `bson:"address" json:"address"`
	Gender       string    `bson:"gender" json:"gender"`
	DOB          string    `bson:"dob" json:"dob"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSnapshot is the denormalized copy of a user embedded in an appointment.
type UserSnapshot struct {
	ID      string  `bson:"id" json:"_id"`
	Name    string  `bson:"name" json:"name"`
	Email   string  `bson:"email" json:"email"`
	Image   string  `bson:"image" json:"image"`
	Phone   string  `bson:"phone" json:"phone"`
	Address Address `bson:"address" json:"address"`
	Gender  string  `bson:"gender" json:"gender"`
	DOB     string  `bson:"dob" json:"dob"`
}

// Snapshot copies the display fields of u.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Image:   u.Image,
		Phone:   u.Phone,
		Address: u.Address,
		Gender:  u.Gender,
		DOB:     u.DOB,
	}
}

// UserProfileUpdate carries the editable profile fields.
type UserProfileUpdate struct {
	Name    string   `json:"name" form:"name" binding:"required"`
	Phone   string   `json:"phone" form:"phone" binding:"required"`
	DOB     string   `json:"dob" form:"dob" binding:"required"`
	Gender  string   `json:"gender" form:"gender" binding:"required"`
	Address *Address `json:"address" form:"-"`
	Image   string   `json:"-" form:"-"`
}

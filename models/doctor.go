package models

import "time"

// SlotsBooked maps a date-key ("D_M_YYYY") to the time labels ("h:mm AM") already
// reserved on that day, in booking order.
type SlotsBooked map[string][]string

// Has reports whether label is reserved on dateKey.
func (s SlotsBooked) Has(dateKey, label string) bool {
	for _, t := range s[dateKey] {
		if t == label {
			return true
		}
	}
	return false
}

// Doctor is the bookable practitioner document.
type Doctor struct {
	ID           string      `bson:"id" json:"_id"`
	Name         string      `bson:"name" json:"name"`
	Email        string      `bson:"email" json:"email,omitempty"`
	PasswordHash string      `bson:"password" json:"-"`
	Image        string      `bson:"image" json:"image"`
	Speciality   string      `bson:"speciality" json:"speciality"`
	Degree       string      `bson:"degree" json:"degree"`
	Experience   string      `bson:"experience" json:"experience"`
	About        string      `bson:"about" json:"about"`
	Fees         float64     `bson:"fees" json:"fees"`
	Address      Address     `bson:"address" json:"address"`
	Available    bool        `bson:"available" json:"available"`
	SlotsBooked  SlotsBooked `bson:"slots_booked" json:"slots_booked"`
	Date         time.Time   `bson:"date" json:"date"`
}

// DoctorSnapshot is the denormalized copy of a doctor embedded in an appointment.
// It deliberately omits credentials and the slot map.
type DoctorSnapshot struct {
	ID         string  `bson:"id" json:"_id"`
	Name       string  `bson:"name" json:"name"`
	Email      string  `bson:"email" json:"email"`
	Image      string  `bson:"image" json:"image"`
	Speciality string  `bson:"speciality" json:"speciality"`
	Degree     string  `bson:"degree" json:"degree"`
	Experience string  `bson:"experience" json:"experience"`
	Fees       float64 `bson:"fees" json:"fees"`
	Address    Address `bson:"address" json:"address"`
}

// Snapshot copies the display fields of d.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Image:      d.Image,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Experience: d.Experience,
		Fees:       d.Fees,
		Address:    d.Address,
	}
}

// PublicDoctor is the listing shape returned to anonymous clients.
type PublicDoctor struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Image       string      `json:"image"`
	Speciality  string      `json:"speciality"`
	Degree      string      `json:"degree"`
	Experience  string      `json:"experience"`
	About       string      `json:"about"`
	Fees        float64     `json:"fees"`
	Address     Address     `json:"address"`
	Available   bool        `json:"available"`
	SlotsBooked SlotsBooked `json:"slots_booked"`
}

// Public strips the email and credentials.
func (d *Doctor) Public() PublicDoctor {
	return PublicDoctor{
		ID:          d.ID,
		Name:        d.Name,
		Image:       d.Image,
		Speciality:  d.Speciality,
		Degree:      d.Degree,
		Experience:  d.Experience,
		About:       d.About,
		Fees:        d.Fees,
		Address:     d.Address,
		Available:   d.Available,
		SlotsBooked: d.SlotsBooked,
	}
}

// DoctorProfileUpdate holds the fields a doctor may change on their own profile.
type DoctorProfileUpdate struct {
	Fees      *float64 `json:"fees"`
	Address   *Address `json:"address"`
	Available *bool    `json:"available"`
}

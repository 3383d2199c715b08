package utils

import "math"

// ToSubunits converts a major-unit amount (rupees, dollars) into the integer minor
// units payment gateways expect (paise, cents).
func ToSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromSubunits is the inverse of ToSubunits.
func FromSubunits(subunits int64) float64 {
	return math.Round(float64(subunits)) / 100
}

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Canonical wire formats: date-keys are unpadded "D_M_YYYY", time labels are
// 12-hour "h:mm AM".
const (
	timeLabelLayout = "3:04 PM"
	isoDateLayout   = "2006-01-02"
)

var (
	ErrInvalidDateKey   = errors.New("invalid slot date")
	ErrInvalidTimeLabel = errors.New("invalid slot time")
)

// DateKey renders the calendar day of t as "D_M_YYYY".
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year())
}

// TimeLabel renders the wall-clock time of t as "h:mm AM".
func TimeLabel(t time.Time) string {
	return t.Format(timeLabelLayout)
}

// SlotKey joins a date-key and a time label into the flattened exclusion key used by
// clients, e.g. "5_6_2025_10:00 AM".
func SlotKey(dateKey, label string) string {
	return dateKey + "_" + label
}

// NormalizeDateKey accepts "D_M_YYYY" (with or without zero padding) or ISO
// "YYYY-MM-DD" and returns the canonical date-key. The date must exist.
func NormalizeDateKey(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidDateKey
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return DateKey(t), nil
	}

	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, raw)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, raw)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if month > 12 || year < 1000 || year > 9999 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, raw)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, raw)
	}
	return DateKey(t), nil
}

// ParseDateKey returns midnight of the canonical date-key in loc.
func ParseDateKey(dateKey string, loc *time.Location) (time.Time, error) {
	canonical, err := NormalizeDateKey(dateKey)
	if err != nil {
		return time.Time{}, err
	}
	var d, m, y int
	if _, err := fmt.Sscanf(canonical, "%d_%d_%d", &d, &m, &y); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, dateKey)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc), nil
}

var timeLayouts = []string{"3:04 PM", "3:04PM", "03:04 PM", "03:04PM", "15:04"}

// NormalizeTimeLabel accepts 12-hour labels in any case, with or without the space
// before the meridiem and with or without a padded hour, as well as 24-hour "HH:MM",
// and returns the canonical "h:mm AM" label.
func NormalizeTimeLabel(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeLabel(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeLabel, raw)
}

package booking

import (
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/utils"
)

// SlotPolicy controls the candidate grid. Hours are wall-clock hours in Location.
type SlotPolicy struct {
	OpenHour        int
	CloseHour       int
	IntervalMinutes int
	BufferMinutes   int
	Days            int
	Location        *time.Location
}

// DefaultSlotPolicy is 10:00 to 21:00 every 30 minutes for a week, with a one hour
// lead time on the current day.
func DefaultSlotPolicy() SlotPolicy {
	return SlotPolicy{
		OpenHour:        10,
		CloseHour:       21,
		IntervalMinutes: 30,
		BufferMinutes:   60,
		Days:            7,
		Location:        time.Local,
	}
}

// SlotPolicyFromConfig reads the SLOT_* and TIMEZONE settings.
func SlotPolicyFromConfig() SlotPolicy {
	return SlotPolicy{
		OpenHour:        config.AppConfig.SlotOpenHour,
		CloseHour:       config.AppConfig.SlotCloseHour,
		IntervalMinutes: config.AppConfig.SlotIntervalMinutes,
		BufferMinutes:   config.AppConfig.SlotBufferMinutes,
		Days:            config.AppConfig.SlotDays,
		Location:        config.Location(),
	}.withDefaults()
}

func (p SlotPolicy) withDefaults() SlotPolicy {
	def := DefaultSlotPolicy()
	if p.OpenHour < 0 || p.OpenHour > 23 {
		p.OpenHour = def.OpenHour
	}
	if p.CloseHour <= 0 || p.CloseHour > 24 {
		p.CloseHour = def.CloseHour
	}
	if p.IntervalMinutes <= 0 {
		p.IntervalMinutes = def.IntervalMinutes
	}
	if p.BufferMinutes < 0 {
		p.BufferMinutes = def.BufferMinutes
	}
	if p.Days <= 0 {
		p.Days = def.Days
	}
	if p.Location == nil {
		p.Location = def.Location
	}
	return p
}

// GenerateSlots builds one bucket per day starting with the day of now. Candidates
// run from the opening time to strictly before closing at the policy interval; on the
// first day the opening time moves to now rounded up to the interval plus the buffer
// once now is past the regular opening. Keys present in booked (see utils.SlotKey) are
// left out. Every bucket is returned even when empty.
func GenerateSlots(now time.Time, booked map[string]struct{}, policy SlotPolicy) []models.DaySlots {
	p := policy.withDefaults()
	now = now.In(p.Location)
	closeMin := p.CloseHour * 60
	days := make([]models.DaySlots, 0, p.Days)

	for i := 0; i < p.Days; i++ {
		day := time.Date(now.Year(), now.Month(), now.Day()+i, 0, 0, 0, 0, p.Location)
		startMin := p.OpenHour * 60
		if i == 0 {
			startMin = firstDayStart(now, p)
		}

		dateKey := utils.DateKey(day)
		bucket := models.DaySlots{
			Date:    dateKey,
			Weekday: day.Weekday().String()[:3],
			Slots:   []models.Slot{},
		}
		for m := startMin; m < closeMin; m += p.IntervalMinutes {
			t := time.Date(day.Year(), day.Month(), day.Day(), 0, m, 0, 0, p.Location)
			label := utils.TimeLabel(t)
			if _, taken := booked[utils.SlotKey(dateKey, label)]; taken {
				continue
			}
			bucket.Slots = append(bucket.Slots, models.Slot{DateTime: t, SlotDate: dateKey, SlotTime: label})
		}
		days = append(days, bucket)
	}
	return days
}

// firstDayStart returns the opening minute-of-day for the current day.
func firstDayStart(now time.Time, p SlotPolicy) int {
	openMin := p.OpenHour * 60
	nowMin := now.Hour()*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		nowMin++
	}
	if nowMin <= openMin {
		return openMin
	}
	rounded := ((nowMin + p.IntervalMinutes - 1) / p.IntervalMinutes) * p.IntervalMinutes
	return rounded + p.BufferMinutes
}

// bookedKeySet flattens a slot map into exclusion keys.
func bookedKeySet(slots models.SlotsBooked) map[string]struct{} {
	set := make(map[string]struct{})
	for dateKey, labels := range slots {
		for _, label := range labels {
			set[utils.SlotKey(dateKey, label)] = struct{}{}
		}
	}
	return set
}

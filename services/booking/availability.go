package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	"medibook/database"
	"medibook/models"
	"medibook/utils"
)

// BookedSlots returns the doctor's reservations flattened to "D_M_YYYY_h:mm AM" keys,
// ordered by day and then by booking order within the day.
func (s *DefaultBookingService) BookedSlots(ctx context.Context, docID string) ([]string, error) {
	// The generation is read before the doctor so a booking that lands in between
	// leaves this snapshot behind the counter.
	gen, cacheable := s.slotsGeneration(ctx, docID)
	if cacheable {
		if keys, ok := s.cachedBookedSlots(ctx, docID, gen); ok {
			return keys, nil
		}
	}
	doctor, err := s.loadDoctor(ctx, docID)
	if err != nil {
		return nil, err
	}
	keys := flattenSlots(doctor.SlotsBooked, s.policy().Location)
	if cacheable {
		s.storeBookedSlots(ctx, docID, gen, keys)
	}
	return keys, nil
}

// AvailableSlots runs the slot generator against the doctor's current reservations.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, docID string) (*AvailableSlots, error) {
	doctor, err := s.loadDoctor(ctx, docID)
	if err != nil {
		return nil, err
	}
	days := GenerateSlots(s.now(), bookedKeySet(doctor.SlotsBooked), s.policy())
	return &AvailableSlots{DocID: doctor.ID, Available: doctor.Available, Days: days}, nil
}

func (s *DefaultBookingService) UserAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistence("Failed to list appointments", err)
	}
	return appts, nil
}

func (s *DefaultBookingService) DoctorAppointments(ctx context.Context, docID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListByDoctor(ctx, docID)
	if err != nil {
		return nil, persistence("Failed to list appointments", err)
	}
	return appts, nil
}

func (s *DefaultBookingService) AllAppointments(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Appointments.ListAll(ctx)
	if err != nil {
		return nil, persistence("Failed to list appointments", err)
	}
	return appts, nil
}

func (s *DefaultBookingService) policy() SlotPolicy {
	return s.Policy.withDefaults()
}

func (s *DefaultBookingService) loadDoctor(ctx context.Context, docID string) (*models.Doctor, error) {
	if docID == "" {
		return nil, validation("Missing doctor id", nil)
	}
	doctor, err := s.Doctors.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "Doctor not found", nil)
		}
		return nil, persistence("Failed to load doctor", err)
	}
	return doctor, nil
}

// flattenSlots orders days chronologically; unparseable legacy keys go last in
// lexical order.
func flattenSlots(slots models.SlotsBooked, loc *time.Location) []string {
	type day struct {
		key string
		at  time.Time
		ok  bool
	}
	days := make([]day, 0, len(slots))
	for key := range slots {
		at, err := utils.ParseDateKey(key, loc)
		days = append(days, day{key: key, at: at, ok: err == nil})
	}
	sort.Slice(days, func(i, j int) bool {
		a, b := days[i], days[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.ok && !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.key < b.key
	})

	keys := []string{}
	for _, d := range days {
		for _, label := range slots[d.key] {
			keys = append(keys, utils.SlotKey(d.key, label))
		}
	}
	return keys
}

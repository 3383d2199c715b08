package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"medibook/database"
	"medibook/models"
)

// Appointments is an in-memory AppointmentRepository that enforces the live-slot
// uniqueness of the partial index.
type Appointments struct {
	mu    sync.Mutex
	byID  map[string]*models.Appointment
	order []string

	// FailCreate, when set, is returned by Create.
	FailCreate error
}

func NewAppointments() *Appointments {
	return &Appointments{byID: make(map[string]*models.Appointment)}
}

func (r *Appointments) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		return r.FailCreate
	}
	if _, ok := r.byID[appt.ID]; ok {
		return fmt.Errorf("appointment %s: %w", appt.ID, database.ErrConflict)
	}
	for _, a := range r.byID {
		if !a.Cancelled && a.DocID == appt.DocID && a.SlotDate == appt.SlotDate && a.SlotTime == appt.SlotTime {
			return fmt.Errorf("live slot %s %s: %w", appt.SlotDate, appt.SlotTime, database.ErrConflict)
		}
	}
	stored := *appt
	r.byID[appt.ID] = &stored
	r.order = append(r.order, appt.ID)
	return nil
}

func (r *Appointments) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", id, database.ErrNotFound)
	}
	out := *a
	return &out, nil
}

func (r *Appointments) filter(keep func(*models.Appointment) bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, id := range r.order {
		if a := r.byID[id]; keep(a) {
			out = append(out, *a)
		}
	}
	return out
}

func (r *Appointments) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return r.filter(func(a *models.Appointment) bool { return a.UserID == userID }), nil
}

func (r *Appointments) ListByDoctor(ctx context.Context, docID string) ([]models.Appointment, error) {
	return r.filter(func(a *models.Appointment) bool { return a.DocID == docID }), nil
}

func (r *Appointments) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.filter(func(*models.Appointment) bool { return true }), nil
}

func (r *Appointments) Latest(ctx context.Context, n int64) ([]models.Appointment, error) {
	all := r.filter(func(*models.Appointment) bool { return true })
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	if int64(len(all)) > n {
		all = all[:n]
	}
	return all, nil
}

func (r *Appointments) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *Appointments) set(id string, cond func(*models.Appointment) bool, apply func(*models.Appointment)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok || !cond(a) {
		return false, nil
	}
	apply(a)
	return true, nil
}

func (r *Appointments) MarkCancelled(ctx context.Context, id string) (bool, error) {
	return r.set(id,
		func(a *models.Appointment) bool { return !a.Cancelled },
		func(a *models.Appointment) { a.Cancelled = true })
}

func (r *Appointments) MarkCompleted(ctx context.Context, id string) (bool, error) {
	return r.set(id,
		func(a *models.Appointment) bool { return !a.Cancelled && !a.IsCompleted },
		func(a *models.Appointment) { a.IsCompleted = true })
}

func (r *Appointments) MarkPaid(ctx context.Context, id string) (bool, error) {
	return r.set(id,
		func(a *models.Appointment) bool { return !a.Cancelled && !a.Payment },
		func(a *models.Appointment) { a.Payment = true })
}

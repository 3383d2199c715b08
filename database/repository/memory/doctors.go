package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"medibook/database"
	"medibook/models"
)

// Doctors is an in-memory DoctorRepository.
type Doctors struct {
	mu   sync.Mutex
	byID map[string]*models.Doctor

	// FailRelease, when set, is returned by ReleaseSlot.
	FailRelease error
}

func NewDoctors() *Doctors {
	return &Doctors{byID: make(map[string]*models.Doctor)}
}

func copyDoctor(d *models.Doctor) *models.Doctor {
	out := *d
	out.SlotsBooked = make(models.SlotsBooked, len(d.SlotsBooked))
	for k, v := range d.SlotsBooked {
		out.SlotsBooked[k] = append([]string(nil), v...)
	}
	return &out
}

func (r *Doctors) Create(ctx context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[doctor.ID]; ok {
		return fmt.Errorf("doctor %s: %w", doctor.ID, database.ErrConflict)
	}
	for _, d := range r.byID {
		if d.Email == doctor.Email {
			return fmt.Errorf("doctor email %s: %w", doctor.Email, database.ErrConflict)
		}
	}
	if doctor.SlotsBooked == nil {
		doctor.SlotsBooked = models.SlotsBooked{}
	}
	r.byID[doctor.ID] = copyDoctor(doctor)
	return nil
}

func (r *Doctors) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s: %w", id, database.ErrNotFound)
	}
	return copyDoctor(d), nil
}

func (r *Doctors) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.byID {
		if d.Email == email {
			return copyDoctor(d), nil
		}
	}
	return nil, fmt.Errorf("doctor %s: %w", email, database.ErrNotFound)
}

func (r *Doctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Doctor, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, *copyDoctor(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *Doctors) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *Doctors) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return false, fmt.Errorf("doctor %s: %w", id, database.ErrNotFound)
	}
	d.Available = !d.Available
	return d.Available, nil
}

func (r *Doctors) UpdateProfile(ctx context.Context, id string, update models.DoctorProfileUpdate) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s: %w", id, database.ErrNotFound)
	}
	if update.Fees != nil {
		d.Fees = *update.Fees
	}
	if update.Address != nil {
		d.Address = *update.Address
	}
	if update.Available != nil {
		d.Available = *update.Available
	}
	return copyDoctor(d), nil
}

// ReserveSlot applies the check and the append under one lock, like the filtered
// $push it stands in for.
func (r *Doctors) ReserveSlot(ctx context.Context, id, dateKey, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok || !d.Available || d.SlotsBooked.Has(dateKey, label) {
		return fmt.Errorf("reserve %s %s: %w", dateKey, label, database.ErrConflict)
	}
	d.SlotsBooked[dateKey] = append(d.SlotsBooked[dateKey], label)
	return nil
}

func (r *Doctors) ReleaseSlot(ctx context.Context, id, dateKey, label string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailRelease != nil {
		return false, r.FailRelease
	}
	d, ok := r.byID[id]
	if !ok {
		return false, fmt.Errorf("doctor %s: %w", id, database.ErrNotFound)
	}
	labels := d.SlotsBooked[dateKey]
	kept := labels[:0:0]
	for _, l := range labels {
		if l != label {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(labels) {
		return false, nil
	}
	d.SlotsBooked[dateKey] = kept
	return true, nil
}

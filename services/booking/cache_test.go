package booking

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"medibook/database/repository"
	"medibook/models"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(string(c.data[key]), 10, 64)
	n++
	c.data[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

// interleavingDoctors runs afterRead once, right after the next GetByID returns,
// so a concurrent write can land between a read and whatever the caller does next.
type interleavingDoctors struct {
	repository.DoctorRepository
	afterRead func()
}

func (r *interleavingDoctors) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	doc, err := r.DoctorRepository.GetByID(ctx, id)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return doc, err
}

func TestBookedSlots_CacheInvalidatedOnMutation(t *testing.T) {
	f := newFixture(t)
	cache := &mapCache{data: map[string][]byte{}}
	f.svc.Cache = cache
	ctx := context.Background()

	keys, _ := f.svc.BookedSlots(ctx, "d1")
	if len(keys) != 0 {
		t.Fatalf("expected no bookings, got %v", keys)
	}
	if _, ok, _ := cache.Get(ctx, bookedSlotsKey("d1")); !ok {
		t.Fatal("expected booked slots to be cached")
	}

	appt, err := f.svc.Book(ctx, request("u1"))
	if err != nil {
		t.Fatal(err)
	}
	if keys, _ = f.svc.BookedSlots(ctx, "d1"); len(keys) != 1 {
		t.Fatalf("stale cache after booking: %v", keys)
	}

	if _, err := f.svc.CancelByUser(ctx, "u1", appt.ID); err != nil {
		t.Fatal(err)
	}
	if keys, _ = f.svc.BookedSlots(ctx, "d1"); len(keys) != 0 {
		t.Errorf("stale cache after cancel: %v", keys)
	}
}

func TestBookedSlots_BookingDuringReadIsNotHiddenByCache(t *testing.T) {
	f := newFixture(t)
	cache := &mapCache{data: map[string][]byte{}}
	f.svc.Cache = cache
	ctx := context.Background()

	doctors := &interleavingDoctors{DoctorRepository: f.doctors}
	doctors.afterRead = func() {
		if _, err := f.svc.Book(ctx, request("u1")); err != nil {
			t.Errorf("booking during read failed: %v", err)
		}
	}
	f.svc.Doctors = doctors

	// This read saw the doctor before the booking and may cache that view.
	if keys, _ := f.svc.BookedSlots(ctx, "d1"); len(keys) != 0 {
		t.Fatalf("expected the pre-booking view, got %v", keys)
	}

	keys, err := f.svc.BookedSlots(ctx, "d1")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != "5_6_2025_10:00 AM" {
		t.Errorf("stale snapshot served after booking: %v", keys)
	}
	keys, _ = f.svc.BookedSlots(ctx, "d1")
	if len(keys) != 1 {
		t.Errorf("expected the refreshed view to be cached, got %v", keys)
	}
}

package doctor

import (
	"context"
	"testing"
	"time"

	"medibook/database/repository/memory"
	"medibook/models"
	"medibook/utils"
)

func newService(t *testing.T) (*DefaultDoctorService, *memory.Appointments) {
	t.Helper()
	appts := memory.NewAppointments()
	return NewDoctorService(memory.NewDoctors(), appts, nil, nil, nil), appts
}

func validRequest() CreateDoctorRequest {
	return CreateDoctorRequest{
		Name: "Dr. Mehta", Email: "Mehta@Example.com", Password: "longenough",
		Speciality: "Dermatologist", Degree: "MBBS", Experience: "4 Years",
		About: "Skin care", Fees: 40, Address: models.Address{Line1: "Ring Rd"},
	}
}

func TestCreateAndLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, validRequest(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.Available || doc.SlotsBooked == nil || doc.Email != "mehta@example.com" {
		t.Errorf("unexpected doctor %+v", doc)
	}

	res, err := svc.Login(ctx, "mehta@example.com", "longenough")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if id, err := utils.ExtractIDForRole(res.Token, models.RoleDoctor); err != nil || id != doc.ID {
		t.Errorf("token does not identify the doctor: %v", err)
	}
	if _, err := utils.ExtractIDForRole(res.Token, models.RoleUser); err == nil {
		t.Error("doctor token accepted as a user token")
	}
	if _, err := svc.Login(ctx, "mehta@example.com", "nope"); utils.KindOf(err) != utils.KindInvalidCredentials {
		t.Errorf("expected InvalidCredentials, got %v", err)
	}
	if _, err := svc.Create(ctx, validRequest(), nil); utils.KindOf(err) != utils.KindConflict {
		t.Errorf("expected Conflict for duplicate email, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService(t)
	bad := []func(*CreateDoctorRequest){
		func(r *CreateDoctorRequest) { r.Name = "" },
		func(r *CreateDoctorRequest) { r.Email = "nope" },
		func(r *CreateDoctorRequest) { r.Password = "short" },
		func(r *CreateDoctorRequest) { r.Fees = 0 },
	}
	for i, mutate := range bad {
		req := validRequest()
		mutate(&req)
		if _, err := svc.Create(context.Background(), req, nil); utils.KindOf(err) != utils.KindValidation {
			t.Errorf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestToggleAvailabilityAndPublicList(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	doc, err := svc.Create(ctx, validRequest(), nil)
	if err != nil {
		t.Fatal(err)
	}

	available, err := svc.ToggleAvailability(ctx, doc.ID)
	if err != nil || available {
		t.Fatalf("expected unavailable, got %v %v", available, err)
	}
	list, err := svc.ListPublic(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list %v %v", list, err)
	}
	if list[0].Available {
		t.Error("listing does not reflect availability")
	}
	if _, err := svc.ToggleAvailability(ctx, "missing"); utils.KindOf(err) != utils.KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDashboard(t *testing.T) {
	svc, appts := newService(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	seed := []models.Appointment{
		{ID: "a1", UserID: "u1", DocID: "d1", SlotTime: "10:00 AM", Amount: 50, IsCompleted: true},
		{ID: "a2", UserID: "u2", DocID: "d1", SlotTime: "10:30 AM", Amount: 50, Payment: true},
		{ID: "a3", UserID: "u1", DocID: "d1", SlotTime: "11:00 AM", Amount: 50},
		{ID: "a4", UserID: "u3", DocID: "d2", SlotTime: "11:00 AM", Amount: 70, IsCompleted: true},
	}
	for i := range seed {
		seed[i].SlotDate = "1_6_2025"
		seed[i].Date = base.Add(time.Duration(i) * time.Minute)
		if err := appts.Create(ctx, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	dash, err := svc.Dashboard(ctx, "d1")
	if err != nil {
		t.Fatal(err)
	}
	if dash.Earnings != 100 || dash.Appointments != 3 || dash.Patients != 2 {
		t.Errorf("unexpected dashboard %+v", dash)
	}
	if len(dash.LatestAppointments) != 3 || dash.LatestAppointments[0].ID != "a3" {
		t.Errorf("latest appointments should be newest first: %+v", dash.LatestAppointments)
	}
}

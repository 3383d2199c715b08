package admin

import (
	"context"
	"testing"
	"time"

	"medibook/database/repository/memory"
	"medibook/models"
	"medibook/utils"
)

func TestLogin(t *testing.T) {
	repos, _, _, _ := memory.NewRepositories()
	svc := NewAdminService(repos, Credentials{Email: "admin@medibook.dev", Password: "s3cret!"}, time.Hour, nil)
	ctx := context.Background()

	token, err := svc.Login(ctx, "Admin@Medibook.dev", "s3cret!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub, err := utils.ExtractIDForRole(token, models.RoleAdmin); err != nil || sub != "admin@medibook.dev" {
		t.Errorf("unexpected admin token: %s %v", sub, err)
	}
	if _, err := svc.Login(ctx, "admin@medibook.dev", "wrong"); utils.KindOf(err) != utils.KindInvalidCredentials {
		t.Errorf("expected InvalidCredentials, got %v", err)
	}

	unset := NewAdminService(repos, Credentials{}, time.Hour, nil)
	if _, err := unset.Login(ctx, "", ""); utils.KindOf(err) != utils.KindInvalidCredentials {
		t.Errorf("unconfigured admin must not log in, got %v", err)
	}
}

func TestDashboard(t *testing.T) {
	repos, doctors, appts, users := memory.NewRepositories()
	ctx := context.Background()
	if err := doctors.Create(ctx, &models.Doctor{ID: "d1", Email: "d1@example.com", Available: true}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"u1", "u2"} {
		if err := users.Create(ctx, &models.User{ID: id, Email: id + "@example.com"}); err != nil {
			t.Fatal(err)
		}
	}
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		a := &models.Appointment{
			ID: string(rune('a' + i)), UserID: "u1", DocID: "d1",
			SlotDate: "1_6_2025", SlotTime: time.Date(2025, 6, 1, 10, 30*i, 0, 0, time.UTC).Format("3:04 PM"),
			Date: base.Add(time.Duration(i) * time.Minute),
		}
		if err := appts.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	dash, err := NewAdminService(repos, Credentials{}, 0, nil).Dashboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if dash.Doctors != 1 || dash.Patients != 2 || dash.Appointments != 7 {
		t.Errorf("unexpected counts %+v", dash)
	}
	if len(dash.LatestAppointments) != 5 || dash.LatestAppointments[0].ID != "g" {
		t.Errorf("expected newest five, got %+v", dash.LatestAppointments)
	}
}

package user

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"medibook/database/repository/memory"
	"medibook/models"
	"medibook/services/storage"
	"medibook/utils"
)

type fakeImages struct{ uploads int }

func (f *fakeImages) UploadImage(ctx context.Context, file io.Reader, folder string) (*storage.UploadedImage, error) {
	f.uploads++
	return &storage.UploadedImage{PublicID: "img", URL: "https://img.example.com/" + folder}, nil
}

func (f *fakeImages) DeleteImage(ctx context.Context, publicID string) error { return nil }

func newService() (*DefaultUserService, *fakeImages) {
	images := &fakeImages{}
	return NewUserService(memory.NewUsers(), images, time.Hour, nil), images
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: " Asha@Example.com ", Password: "longenough"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sub, err := utils.ExtractIDForRole(res.Token, models.RoleUser)
	if err != nil || sub != res.ID {
		t.Fatalf("token does not identify the user: %v", err)
	}

	login, err := svc.Login(ctx, "asha@example.com", "longenough")
	if err != nil || login.ID != res.ID {
		t.Fatalf("login failed: %+v %v", login, err)
	}
	if _, err := svc.Login(ctx, "asha@example.com", "wrong-password"); utils.KindOf(err) != utils.KindInvalidCredentials {
		t.Errorf("expected InvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "longenough"); utils.KindOf(err) != utils.KindInvalidCredentials {
		t.Errorf("expected InvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	cases := []struct {
		name string
		req  RegisterRequest
		kind utils.ErrorKind
	}{
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "longenough"}, utils.KindValidation},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "longenough"}, utils.KindValidation},
		{"short password", RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"}, utils.KindValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.req); utils.KindOf(err) != tc.kind {
				t.Errorf("expected %s, got %v", tc.kind, err)
			}
		})
	}

	if _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "longenough"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, RegisterRequest{Name: "B", Email: "A@example.com", Password: "longenough"}); utils.KindOf(err) != utils.KindConflict {
		t.Errorf("expected Conflict for duplicate email, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, images := newService()
	ctx := context.Background()
	res, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "longenough"})
	if err != nil {
		t.Fatal(err)
	}

	update := models.UserProfileUpdate{
		Name: "Asha K", Phone: "9999999999", DOB: "1990-01-01", Gender: "Female",
		Address: &models.Address{Line1: "1 Main St"},
	}
	u, err := svc.UpdateProfile(ctx, res.ID, update, strings.NewReader("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Asha K" || u.Address.Line1 != "1 Main St" || u.Image == "" || images.uploads != 1 {
		t.Errorf("profile not updated: %+v", u)
	}

	update.Phone = ""
	if _, err := svc.UpdateProfile(ctx, res.ID, update, nil); utils.KindOf(err) != utils.KindValidation {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if _, err := svc.GetProfile(ctx, "missing"); utils.KindOf(err) != utils.KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

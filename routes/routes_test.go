package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/database/repository/memory"
	"medibook/handlers"
	"medibook/models"
	"medibook/services/admin"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/payment"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

type stubGateway struct{}

func (stubGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*models.PaymentOrder, error) {
	return &models.PaymentOrder{ID: "order_" + receipt, Amount: amount, Currency: currency, Receipt: receipt, Status: models.OrderStatusCreated}, nil
}

func (stubGateway) FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	return &models.PaymentOrder{ID: orderID, Receipt: orderID[len("order_"):], Status: models.OrderStatusPaid}, nil
}

type testServer struct {
	router *gin.Engine
	now    time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repos, doctors, _, _ := memory.NewRepositories()
	ctx := context.Background()
	if err := doctors.Create(ctx, &models.Doctor{ID: "d1", Name: "Dr. Rao", Email: "rao@example.com", Fees: 50, Available: true}); err != nil {
		t.Fatal(err)
	}

	policy := booking.DefaultSlotPolicy()
	policy.Location = time.UTC
	now := time.Date(2025, time.June, 5, 8, 0, 0, 0, time.UTC)
	bookings := booking.NewBookingService(repos, nil, policy, nil)
	bookings.Now = func() time.Time { return now }

	hb := handlers.NewHandlerBundle(handlers.Services{
		Users:    user.NewUserService(repos.Users, nil, time.Hour, nil),
		Doctors:  doctor.NewDoctorService(repos.Doctors, repos.Appointments, nil, nil, nil),
		Admin:    admin.NewAdminService(repos, admin.Credentials{Email: "admin@example.com", Password: "adminpass"}, time.Hour, nil),
		Bookings: bookings,
		Payments: payment.NewPaymentService(repos.Appointments, stubGateway{}, "INR", nil),
	})
	r := gin.New()
	RegisterRoutes(r, hb)
	return &testServer{router: r, now: now}
}

func (s *testServer) do(t *testing.T, method, path, header, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(header, token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	out := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func (s *testServer) registerUser(t *testing.T, email string) string {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/user/register", "", "", map[string]string{
		"name": "Patient", "email": email, "password": "longenough",
	})
	if code != http.StatusCreated {
		t.Fatalf("register failed: %d %v", code, body)
	}
	return body["token"].(string)
}

func slotBody() map[string]string {
	return map[string]string{"docId": "d1", "slotDate": "5_6_2025", "slotTime": "10:00 AM"}
}

func TestBookingFlowOverHTTP(t *testing.T) {
	s := newTestServer(t)
	alice := s.registerUser(t, "alice@example.com")
	bob := s.registerUser(t, "bob@example.com")

	code, body := s.do(t, http.MethodPost, "/api/user/book-appointment", "token", alice, slotBody())
	if code != http.StatusCreated || body["success"] != true {
		t.Fatalf("booking failed: %d %v", code, body)
	}
	apptID := body["appointment"].(map[string]interface{})["_id"].(string)

	code, body = s.do(t, http.MethodPost, "/api/user/book-appointment", "token", bob, slotBody())
	if code != http.StatusBadRequest || body["code"] != string(utils.KindSlotAlreadyBooked) {
		t.Fatalf("expected slot conflict, got %d %v", code, body)
	}

	code, body = s.do(t, http.MethodGet, "/api/user/booked-slots/d1", "", "", nil)
	if code != http.StatusOK {
		t.Fatalf("booked slots failed: %d", code)
	}
	if keys := body["bookedSlots"].([]interface{}); len(keys) != 1 || keys[0] != "5_6_2025_10:00 AM" {
		t.Errorf("unexpected booked slots %v", keys)
	}

	code, _ = s.do(t, http.MethodPost, "/api/user/cancel-appointment", "token", bob, map[string]string{"appointmentId": apptID})
	if code != http.StatusForbidden {
		t.Errorf("expected 403 for foreign cancel, got %d", code)
	}
	code, body = s.do(t, http.MethodPost, "/api/user/cancel-appointment", "Authorization", "Bearer "+alice, map[string]string{"appointmentId": apptID})
	if code != http.StatusOK || body["slotReleased"] != true {
		t.Fatalf("cancel failed: %d %v", code, body)
	}

	code, _ = s.do(t, http.MethodPost, "/api/user/book-appointment", "token", bob, slotBody())
	if code != http.StatusCreated {
		t.Fatalf("rebooking after cancel failed: %d", code)
	}
	code, body = s.do(t, http.MethodPost, "/api/user/cancel-appointment", "token", alice, map[string]string{"appointmentId": apptID})
	if code != http.StatusOK || body["alreadyCancelled"] != true {
		t.Errorf("repeat cancel should be a no-op, got %d %v", code, body)
	}
	_, body = s.do(t, http.MethodGet, "/api/user/booked-slots/d1", "", "", nil)
	if keys := body["bookedSlots"].([]interface{}); len(keys) != 1 {
		t.Errorf("repeat cancel released bob's slot: %v", keys)
	}
}

func TestBookAppointment_Validation(t *testing.T) {
	s := newTestServer(t)
	alice := s.registerUser(t, "alice@example.com")

	code, body := s.do(t, http.MethodPost, "/api/user/book-appointment", "token", alice,
		map[string]string{"docId": "d1", "slotDate": "2025/06/05", "slotTime": "10:00 AM"})
	if code != http.StatusBadRequest || body["code"] != string(utils.KindValidation) {
		t.Errorf("expected validation error, got %d %v", code, body)
	}

	code, _ = s.do(t, http.MethodPost, "/api/user/book-appointment", "", "", slotBody())
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", code)
	}
}

func TestAvailabilityToggleBlocksBooking(t *testing.T) {
	s := newTestServer(t)
	alice := s.registerUser(t, "alice@example.com")

	code, body := s.do(t, http.MethodPost, "/api/admin/login", "", "", map[string]string{"email": "admin@example.com", "password": "adminpass"})
	if code != http.StatusOK {
		t.Fatalf("admin login failed: %d %v", code, body)
	}
	adminToken := body["token"].(string)

	code, body = s.do(t, http.MethodPost, "/api/admin/change-availability", "atoken", adminToken, map[string]string{"docId": "d1"})
	if code != http.StatusOK || body["available"] != false {
		t.Fatalf("toggle failed: %d %v", code, body)
	}
	code, body = s.do(t, http.MethodPost, "/api/user/book-appointment", "token", alice, slotBody())
	if code != http.StatusBadRequest || body["code"] != string(utils.KindDoctorUnavailable) {
		t.Errorf("expected DoctorUnavailable, got %d %v", code, body)
	}

	code, _ = s.do(t, http.MethodGet, "/api/admin/dashboard", "token", alice, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("user token must not open the admin console, got %d", code)
	}
}

func TestDoctorCompletesAndPaymentVerifies(t *testing.T) {
	s := newTestServer(t)
	alice := s.registerUser(t, "alice@example.com")
	_, body := s.do(t, http.MethodPost, "/api/user/book-appointment", "token", alice, slotBody())
	apptID := body["appointment"].(map[string]interface{})["_id"].(string)

	doctorToken, err := utils.GenerateToken("d1", models.RoleDoctor, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	code, body := s.do(t, http.MethodPost, "/api/doctor/complete-appointment", "dtoken", doctorToken, map[string]string{"appointmentId": apptID})
	if code != http.StatusOK {
		t.Fatalf("complete failed: %d %v", code, body)
	}
	otherDoctor, _ := utils.GenerateToken("d2", models.RoleDoctor, time.Hour)
	code, _ = s.do(t, http.MethodPost, "/api/doctor/cancel-appointment", "dtoken", otherDoctor, map[string]string{"appointmentId": apptID})
	if code != http.StatusForbidden {
		t.Errorf("expected 403 for another doctor, got %d", code)
	}

	code, body = s.do(t, http.MethodPost, "/api/user/payment-razorpay", "token", alice, map[string]string{"appointmentId": apptID})
	if code != http.StatusOK {
		t.Fatalf("order failed: %d %v", code, body)
	}
	order := body["order"].(map[string]interface{})
	if order["amount"].(float64) != 5000 {
		t.Errorf("expected 5000 subunits, got %v", order["amount"])
	}
	code, body = s.do(t, http.MethodPost, "/api/user/verify-razorpay", "token", alice, map[string]string{"razorpay_order_id": order["id"].(string)})
	if code != http.StatusOK {
		t.Fatalf("verify failed: %d %v", code, body)
	}

	code, body = s.do(t, http.MethodGet, "/api/doctor/dashboard", "dtoken", doctorToken, nil)
	if code != http.StatusOK {
		t.Fatalf("dashboard failed: %d", code)
	}
	dash := body["dashData"].(map[string]interface{})
	if dash["earnings"].(float64) != 50 || dash["patients"].(float64) != 1 {
		t.Errorf("unexpected dashboard %v", dash)
	}
}

func TestAvailableSlotsEndpoint(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, http.MethodGet, "/api/user/available-slots/d1", "", "", nil)
	if code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	days := body["days"].([]interface{})
	if len(days) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(days))
	}
	code, _ = s.do(t, http.MethodGet, "/api/user/available-slots/unknown", "", "", nil)
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown doctor, got %d", code)
	}
}

func TestPublicDoctorListHidesEmail(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, http.MethodGet, "/api/doctor/list", "", "", nil)
	if code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	docs := body["doctors"].([]interface{})
	if len(docs) != 1 {
		t.Fatalf("expected one doctor, got %d", len(docs))
	}
	if _, ok := docs[0].(map[string]interface{})["email"]; ok {
		t.Error("public listing leaks email")
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	code, _ := s.do(t, http.MethodGet, "/health", "", "", nil)
	if code != http.StatusOK {
		t.Errorf("expected 200 before the first probe, got %d", code)
	}
}

package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"medibook/database/repository"
	"medibook/database/repository/memory"
	"medibook/models"
	"medibook/utils"
)

type fakeGateway struct {
	orders  map[string]*models.PaymentOrder
	created []*models.PaymentOrder
	err     error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*models.PaymentOrder, error) {
	if g.err != nil {
		return nil, g.err
	}
	order := &models.PaymentOrder{ID: "order_" + receipt, Amount: amount, Currency: currency, Receipt: receipt, Status: models.OrderStatusCreated}
	g.orders[order.ID] = order
	g.created = append(g.created, order)
	return order, nil
}

func (g *fakeGateway) FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	if g.err != nil {
		return nil, g.err
	}
	order, ok := g.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	out := *order
	return &out, nil
}

func setup(t *testing.T) (*DefaultPaymentService, *memory.Appointments, *fakeGateway) {
	t.Helper()
	appts := memory.NewAppointments()
	err := appts.Create(context.Background(), &models.Appointment{
		ID: "a1", UserID: "u1", DocID: "d1", SlotDate: "5_6_2025", SlotTime: "10:00 AM",
		Amount: 49.99, Date: time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}
	gw := &fakeGateway{orders: map[string]*models.PaymentOrder{}}
	return NewPaymentService(appts, gw, "inr", nil), appts, gw
}

func TestCreateOrder(t *testing.T) {
	svc, _, gw := setup(t)
	order, err := svc.CreateOrder(context.Background(), "u1", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Amount != 4999 || order.Currency != "INR" || order.Receipt != "a1" {
		t.Errorf("unexpected order %+v", order)
	}
	if len(gw.created) != 1 {
		t.Errorf("expected one gateway call, got %d", len(gw.created))
	}
}

func TestCreateOrder_Rejections(t *testing.T) {
	svc, appts, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.CreateOrder(ctx, "u2", "a1"); utils.KindOf(err) != utils.KindUnauthorized {
		t.Errorf("expected Unauthorized, got %v", err)
	}
	if _, err := svc.CreateOrder(ctx, "u1", "missing"); utils.KindOf(err) != utils.KindAppointmentNotFound {
		t.Errorf("expected AppointmentNotFound, got %v", err)
	}
	if _, err := appts.MarkCancelled(ctx, "a1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateOrder(ctx, "u1", "a1"); utils.KindOf(err) != utils.KindAppointmentCancelled {
		t.Errorf("expected AppointmentCancelled, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	svc, appts, gw := setup(t)
	ctx := context.Background()
	order, err := svc.CreateOrder(ctx, "u1", "a1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(ctx, "u1", order.ID); utils.KindOf(err) != utils.KindPaymentNotCompleted {
		t.Fatalf("expected PaymentNotCompleted, got %v", err)
	}
	stored, _ := appts.GetByID(ctx, "a1")
	if stored.Payment {
		t.Fatal("unpaid order marked the appointment paid")
	}

	gw.orders[order.ID].Status = models.OrderStatusPaid
	appt, err := svc.Verify(ctx, "u1", order.ID)
	if err != nil || !appt.Payment {
		t.Fatalf("expected payment recorded, got %+v %v", appt, err)
	}
	if _, err := svc.Verify(ctx, "u1", order.ID); err != nil {
		t.Errorf("repeat verify should be a no-op: %v", err)
	}
	if _, err := svc.CreateOrder(ctx, "u1", "a1"); utils.KindOf(err) != utils.KindValidation {
		t.Errorf("expected ValidationError for paid appointment, got %v", err)
	}
}

func TestVerify_CancelledAppointment(t *testing.T) {
	svc, appts, gw := setup(t)
	ctx := context.Background()
	order, _ := svc.CreateOrder(ctx, "u1", "a1")
	gw.orders[order.ID].Status = models.OrderStatusPaid
	if _, err := appts.MarkCancelled(ctx, "a1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Verify(ctx, "u1", order.ID); utils.KindOf(err) != utils.KindAppointmentCancelled {
		t.Errorf("expected AppointmentCancelled, got %v", err)
	}
}

// cancellingAppointments cancels the appointment right before the paid flag is
// written, as a concurrent cancel would.
type cancellingAppointments struct {
	repository.AppointmentRepository
}

func (r cancellingAppointments) MarkPaid(ctx context.Context, id string) (bool, error) {
	if _, err := r.AppointmentRepository.MarkCancelled(ctx, id); err != nil {
		return false, err
	}
	return r.AppointmentRepository.MarkPaid(ctx, id)
}

func TestVerify_CancelledDuringVerification(t *testing.T) {
	svc, appts, gw := setup(t)
	ctx := context.Background()
	order, _ := svc.CreateOrder(ctx, "u1", "a1")
	gw.orders[order.ID].Status = models.OrderStatusPaid
	svc.Appointments = cancellingAppointments{AppointmentRepository: appts}

	appt, err := svc.Verify(ctx, "u1", order.ID)
	if utils.KindOf(err) != utils.KindAppointmentCancelled {
		t.Fatalf("expected AppointmentCancelled, got appt=%+v err=%v", appt, err)
	}
	stored, _ := appts.GetByID(ctx, "a1")
	if !stored.Cancelled || stored.Payment {
		t.Errorf("unexpected stored state cancelled=%v payment=%v", stored.Cancelled, stored.Payment)
	}
}

func TestVerify_GatewayFailure(t *testing.T) {
	svc, _, gw := setup(t)
	gw.err = errors.New("timeout")
	if _, err := svc.Verify(context.Background(), "u1", "order_x"); utils.KindOf(err) != utils.KindUpstream {
		t.Errorf("expected UpstreamError, got %v", err)
	}
}

func TestOrderFromBody(t *testing.T) {
	order, err := orderFromBody(map[string]interface{}{
		"id": "order_9", "amount": float64(5000), "currency": "INR", "receipt": "a9", "status": "paid",
	})
	if err != nil {
		t.Fatal(err)
	}
	if order.Amount != 5000 || order.Status != models.OrderStatusPaid || order.Receipt != "a9" {
		t.Errorf("unexpected order %+v", order)
	}
	if _, err := orderFromBody(map[string]interface{}{}); err == nil {
		t.Error("expected error for empty body")
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/wn-marie/mood-journal/internal/models"
)

func TestInitiatePaymentSuccess(t *testing.T) {
	fake := &fakePaymentStore{}
	gateway := &stubGateway{result: &CheckoutResult{PaymentURL: "https://pay.example/abc", PaymentID: "ext-123"}}
	svc := NewPaymentService(fake, gateway)

	result, err := svc.InitiatePayment(context.Background(), "basic", 5.99)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if !result.Success {
		t.Fatalf("Success = false, error = %q", result.Error)
	}
	if result.PaymentURL == "" {
		t.Error("PaymentURL empty")
	}
	if result.PaymentID == 0 {
		t.Error("PaymentID not set")
	}

	stored, ok := fake.byID(result.PaymentID)
	if !ok {
		t.Fatal("payment record not stored")
	}
	if stored.Status != models.PaymentPending {
		t.Errorf("Status = %q, want pending", stored.Status)
	}
	if stored.ExternalPaymentID != "ext-123" {
		t.Errorf("ExternalPaymentID = %q, want ext-123", stored.ExternalPaymentID)
	}
	if stored.PlanType != "basic" || stored.Amount != 5.99 {
		t.Errorf("stored = %+v", stored)
	}
}

func TestInitiatePaymentGatewayFailureKeepsPendingRecord(t *testing.T) {
	fake := &fakePaymentStore{}
	gateway := &stubGateway{err: errors.New("gateway down")}
	svc := NewPaymentService(fake, gateway)

	result, err := svc.InitiatePayment(context.Background(), "pro", 12.50)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if result.Success {
		t.Error("Success = true, want false on gateway failure")
	}
	if result.Error == "" {
		t.Error("Error message missing")
	}
	// Accepted inconsistency: the pending record stays behind
	if len(fake.payments) != 1 {
		t.Fatalf("payments stored = %d, want 1", len(fake.payments))
	}
	if fake.payments[0].Status != models.PaymentPending {
		t.Errorf("Status = %q, want pending", fake.payments[0].Status)
	}
	if fake.payments[0].ExternalPaymentID != "" {
		t.Errorf("ExternalPaymentID = %q, want empty", fake.payments[0].ExternalPaymentID)
	}
}

func TestInitiatePaymentWithoutStore(t *testing.T) {
	gateway := &stubGateway{result: &CheckoutResult{PaymentURL: "https://pay.example/abc", PaymentID: "ext-1"}}
	svc := NewPaymentService(nil, gateway)

	result, err := svc.InitiatePayment(context.Background(), "basic", 5.99)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if !result.Success {
		t.Fatalf("Success = false, error = %q", result.Error)
	}
	if result.PaymentID == 0 {
		t.Error("placeholder PaymentID missing in degrade mode")
	}
}

func TestPaymentCallbacks(t *testing.T) {
	fake := &fakePaymentStore{}
	gateway := &stubGateway{result: &CheckoutResult{PaymentURL: "https://pay.example/abc", PaymentID: "ext-9"}}
	svc := NewPaymentService(fake, gateway)

	first, err := svc.InitiatePayment(context.Background(), "basic", 5.99)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	svc.OnPaymentSuccess(context.Background(), "ext-9")
	stored, _ := fake.byID(first.PaymentID)
	if stored.Status != models.PaymentCompleted {
		t.Errorf("Status after success callback = %q, want completed", stored.Status)
	}

	// A second payment, cancelled this time
	gateway.result = &CheckoutResult{PaymentURL: "https://pay.example/def", PaymentID: "ext-10"}
	second, err := svc.InitiatePayment(context.Background(), "pro", 12.50)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	svc.OnPaymentCancel(context.Background(), "ext-10")
	stored, _ = fake.byID(second.PaymentID)
	if stored.Status != models.PaymentCancelled {
		t.Errorf("Status after cancel callback = %q, want cancelled", stored.Status)
	}
}

func TestPaymentCallbackUnknownIDIsNoOp(t *testing.T) {
	fake := &fakePaymentStore{}
	gateway := &stubGateway{result: &CheckoutResult{PaymentURL: "https://pay.example/abc", PaymentID: "ext-1"}}
	svc := NewPaymentService(fake, gateway)

	result, err := svc.InitiatePayment(context.Background(), "basic", 5.99)
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	svc.OnPaymentSuccess(context.Background(), "no-such-id")
	svc.OnPaymentSuccess(context.Background(), "")

	stored, _ := fake.byID(result.PaymentID)
	if stored.Status != models.PaymentPending {
		t.Errorf("Status = %q, want pending untouched", stored.Status)
	}
}

func TestListPaymentsWithoutStore(t *testing.T) {
	svc := NewPaymentService(nil, &stubGateway{})
	payments, err := svc.ListPayments(context.Background())
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments) != 0 {
		t.Errorf("payments = %v, want empty", payments)
	}
}

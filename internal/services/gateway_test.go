package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateCheckoutDemoModeWithoutAPIKey(t *testing.T) {
	gateway := NewIntaSendGateway("", "", "http://localhost:8080")

	result, err := gateway.CreateCheckout(context.Background(), 5.99, "basic")
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	if result.PaymentURL != "https://intasend.com/demo-payment" {
		t.Errorf("PaymentURL = %q", result.PaymentURL)
	}
	if !strings.HasPrefix(result.PaymentID, "demo_") {
		t.Errorf("PaymentID = %q, want demo_ prefix", result.PaymentID)
	}
}

func TestCreateCheckoutSendsExpectedPayload(t *testing.T) {
	var got checkoutRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(CheckoutResult{PaymentURL: "https://pay.example/xyz", PaymentID: "ext-42"})
	}))
	defer srv.Close()

	gateway := NewIntaSendGateway("sk-test", srv.URL, "https://backend.example.com")
	result, err := gateway.CreateCheckout(context.Background(), 5.99, "basic")
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if got.Amount != 5.99 || got.Currency != "USD" {
		t.Errorf("payload = %+v", got)
	}
	if got.Desc != "Mood Journal Basic Plan" {
		t.Errorf("description = %q", got.Desc)
	}
	if got.SuccessURL != "https://backend.example.com/payment/success" {
		t.Errorf("success_url = %q", got.SuccessURL)
	}
	if got.CancelURL != "https://backend.example.com/payment/cancel" {
		t.Errorf("cancel_url = %q", got.CancelURL)
	}
	if got.Metadata["plan_type"] != "basic" || got.Metadata["app"] != "mood_journal" {
		t.Errorf("metadata = %v", got.Metadata)
	}

	if result.PaymentURL != "https://pay.example/xyz" || result.PaymentID != "ext-42" {
		t.Errorf("result = %+v", result)
	}
}

func TestCreateCheckoutAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer srv.Close()

	gateway := NewIntaSendGateway("sk-bad", srv.URL, "http://localhost:8080")
	if _, err := gateway.CreateCheckout(context.Background(), 5.99, "basic"); err == nil {
		t.Fatal("CreateCheckout err = nil, want error on non-200 status")
	}
}

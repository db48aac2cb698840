package services

import (
	"context"
	"log"
	"time"

	"github.com/wn-marie/mood-journal/internal/models"
	"github.com/wn-marie/mood-journal/internal/store"
)

// InitiatePaymentResult reports the outcome of a checkout initiation.
// PaymentID is the local record ID, not the gateway's.
type InitiatePaymentResult struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url,omitempty"`
	PaymentID  int64  `json:"payment_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PaymentService owns payment records and the checkout flow with the gateway.
// The pending record is created before the gateway call; if the gateway then
// fails, the pending record is left in place (no compensation).
type PaymentService struct {
	store   store.PaymentStore
	gateway CheckoutGateway
}

// NewPaymentService wires the payment service. store may be nil.
func NewPaymentService(paymentStore store.PaymentStore, gateway CheckoutGateway) *PaymentService {
	return &PaymentService{store: paymentStore, gateway: gateway}
}

// InitiatePayment creates a pending payment record and requests a checkout
// URL from the gateway. A non-nil error means the local record could not be
// created; a gateway failure comes back as Success=false instead.
func (s *PaymentService) InitiatePayment(ctx context.Context, planType string, amount float64) (InitiatePaymentResult, error) {
	payment := models.Payment{
		PlanType: planType,
		Amount:   amount,
		Status:   models.PaymentPending,
	}

	if s.store != nil {
		saved, err := s.store.Insert(ctx, payment)
		if err != nil {
			return InitiatePaymentResult{}, err
		}
		payment = saved
	} else {
		payment.ID = time.Now().UnixMilli()
		log.Println("⚠️ Payment store not available. Payment not saved.")
	}

	checkout, err := s.gateway.CreateCheckout(ctx, amount, planType)
	if err != nil {
		// The pending record stays behind; see OnPaymentSuccess/Cancel.
		log.Printf("Checkout creation failed: %v", err)
		return InitiatePaymentResult{Success: false, Error: "Payment initialization failed"}, nil
	}

	if s.store != nil {
		if err := s.store.SetExternalID(ctx, payment.ID, checkout.PaymentID); err != nil {
			log.Printf("Failed to record external payment ID: %v", err)
		}
	}

	return InitiatePaymentResult{
		Success:    true,
		PaymentURL: checkout.PaymentURL,
		PaymentID:  payment.ID,
	}, nil
}

// OnPaymentSuccess marks the payment matching the gateway ID as completed.
// Unknown IDs are a no-op.
func (s *PaymentService) OnPaymentSuccess(ctx context.Context, externalID string) {
	s.setStatus(ctx, externalID, models.PaymentCompleted)
}

// OnPaymentCancel marks the payment matching the gateway ID as cancelled.
// Unknown IDs are a no-op.
func (s *PaymentService) OnPaymentCancel(ctx context.Context, externalID string) {
	s.setStatus(ctx, externalID, models.PaymentCancelled)
}

func (s *PaymentService) setStatus(ctx context.Context, externalID string, status models.PaymentStatus) {
	if externalID == "" || s.store == nil {
		return
	}
	matched, err := s.store.SetStatusByExternalID(ctx, externalID, status)
	if err != nil {
		log.Printf("Failed to update payment status: %v", err)
		return
	}
	if !matched {
		log.Printf("Payment callback for unknown external ID %q ignored", externalID)
	}
}

// ListPayments returns all payment records, newest first.
func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	if s.store == nil {
		return []models.Payment{}, nil
	}
	return s.store.All(ctx)
}

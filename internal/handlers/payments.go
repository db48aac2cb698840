package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wn-marie/mood-journal/internal/models"
)

// InitiatePaymentRequest is the JSON body for POST /api/payment/initiate.
type InitiatePaymentRequest struct {
	PlanType string  `json:"plan_type"`
	Amount   float64 `json:"amount"`
}

type GetPaymentsResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Payments []models.Payment `json:"payments"`
	Total    int              `json:"total"`
}

// InitiatePayment creates a pending payment and requests a checkout URL.
func InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}
	if req.PlanType == "" {
		req.PlanType = "basic"
	}
	if req.Amount == 0 {
		req.Amount = 5.99
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := paymentService.InitiatePayment(ctx, req.PlanType, req.Amount)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to create payment record",
		})
		return
	}
	if !result.Success {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// PaymentSuccess is the gateway redirect target after a completed checkout.
// payment_id is the gateway's ID, not ours.
func PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	paymentService.OnPaymentSuccess(ctx, r.URL.Query().Get("payment_id"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Payment completed",
	})
}

// PaymentCancel is the gateway redirect target after a cancelled checkout.
func PaymentCancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	paymentService.OnPaymentCancel(ctx, r.URL.Query().Get("payment_id"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Payment cancelled",
	})
}

// GetPayments returns all payment records, newest first.
func GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	payments, err := paymentService.ListPayments(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetPaymentsResponse{
			Success:  false,
			Message:  "Failed to fetch payments",
			Payments: []models.Payment{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetPaymentsResponse{
		Success:  true,
		Payments: payments,
		Total:    len(payments),
	})
}

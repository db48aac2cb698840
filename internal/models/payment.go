package models

import "time"

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment tracks a checkout initiated with the external gateway.
// ExternalPaymentID is set after the gateway accepts the checkout and is the
// only key the success/cancel callbacks use; completed and cancelled are
// terminal states.
type Payment struct {
	ID                int64         `json:"id"`
	CreatedAt         time.Time     `json:"created_at"`
	PlanType          string        `json:"plan_type"`
	Amount            float64       `json:"amount"`
	Status            PaymentStatus `json:"status"`
	ExternalPaymentID string        `json:"external_payment_id,omitempty"`
}

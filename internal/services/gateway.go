package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultCheckoutAPIURL is the IntaSend checkout endpoint.
const DefaultCheckoutAPIURL = "https://api.intasend.com/v1/checkout/"

// CheckoutResult is what the gateway returns for a created checkout session.
type CheckoutResult struct {
	PaymentURL string `json:"payment_url"`
	PaymentID  string `json:"payment_id"`
}

// CheckoutGateway creates hosted checkout sessions with the payment provider.
type CheckoutGateway interface {
	CreateCheckout(ctx context.Context, amount float64, planType string) (*CheckoutResult, error)
}

// IntaSendGateway calls the IntaSend checkout API. Without an API key it
// returns a deterministic demo checkout so the flow still works in demos.
type IntaSendGateway struct {
	apiURL     string
	apiKey     string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

// NewIntaSendGateway builds the gateway client. host is the public base URL of
// this backend, used for the success/cancel redirect URLs. apiURL may be empty
// to use the production endpoint.
func NewIntaSendGateway(apiKey, apiURL, host string) *IntaSendGateway {
	if apiURL == "" {
		apiURL = DefaultCheckoutAPIURL
	}
	return &IntaSendGateway{
		apiURL:     apiURL,
		apiKey:     apiKey,
		successURL: host + "/payment/success",
		cancelURL:  host + "/payment/cancel",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type checkoutRequest struct {
	Amount     float64           `json:"amount"`
	Currency   string            `json:"currency"`
	Desc       string            `json:"description"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	Metadata   map[string]string `json:"metadata"`
}

// CreateCheckout asks the gateway for a hosted checkout URL.
func (g *IntaSendGateway) CreateCheckout(ctx context.Context, amount float64, planType string) (*CheckoutResult, error) {
	if g.apiKey == "" {
		// Demo fallback: no gateway configured
		return &CheckoutResult{
			PaymentURL: "https://intasend.com/demo-payment",
			PaymentID:  "demo_" + time.Now().Format("20060102150405"),
		}, nil
	}

	payload := checkoutRequest{
		Amount:     amount,
		Currency:   "USD",
		Desc:       fmt.Sprintf("Mood Journal %s Plan", titleCase(planType)),
		SuccessURL: g.successURL,
		CancelURL:  g.cancelURL,
		Metadata: map[string]string{
			"plan_type": planType,
			"app":       "mood_journal",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("checkout api error (%d): %s", resp.StatusCode, string(errBody))
	}

	var result CheckoutResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("checkout decode: %w", err)
	}

	return &result, nil
}

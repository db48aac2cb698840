package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wn-marie/mood-journal/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Journal entry routes
	r.Post("/api/entries", handlers.CreateEntry)
	r.Get("/api/entries", handlers.GetEntries)
	r.Delete("/api/entries/{id}", handlers.DeleteEntry)

	// Analyze-only route (no persistence)
	r.Post("/api/ai/analyze", handlers.AnalyzeEmotion)

	// Mood statistics for charts
	r.Get("/api/stats", handlers.GetStats)

	// Payment routes
	r.Post("/api/payment/initiate", handlers.InitiatePayment)
	r.Get("/api/payments", handlers.GetPayments)

	// Gateway redirect callbacks (payment_id is the gateway's ID)
	r.Get("/payment/success", handlers.PaymentSuccess)
	r.Get("/payment/cancel", handlers.PaymentCancel)
}

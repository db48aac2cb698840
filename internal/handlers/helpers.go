package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wn-marie/mood-journal/internal/services"
)

var (
	entryService   *services.EntryService
	statsService   *services.StatsService
	paymentService *services.PaymentService
)

// Init wires the service layer into the HTTP handlers. Call once at startup
// before routes are served.
func Init(entries *services.EntryService, stats *services.StatsService, payments *services.PaymentService) {
	entryService = entries
	statsService = stats
	paymentService = payments
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

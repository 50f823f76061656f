package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mickey-panda/caffeine-club-online/internal/services/checkout"
)

func contextWithPingTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

// handleSlots lists the delivery slots on offer, grouped by day. An
// empty list means no deliveries are currently available.
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	groups := s.checkout.AvailableSlots()
	writeJSON(w, http.StatusOK, map[string]any{"days": groups})
}

// handleCheckout confirms the session's cart into a persisted order.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slot      time.Time `json:"slot"`
		PromoCode string    `json:"promo_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	result, err := s.checkout.Checkout(r.Context(), checkout.Request{
		SessionID: session(w, r),
		Slot:      req.Slot,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// handleHealth reports storage liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithPingTimeout(r)
	defer cancel()

	response := map[string]any{
		"status":    "ok",
		"service":   "caffeine-club-online",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.storage.Ping(ctx); err != nil {
		response["status"] = "unhealthy"
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

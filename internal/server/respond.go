package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mickey-panda/caffeine-club-online/internal/cart"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

// writeServiceError maps a service error onto the API's status codes:
// validation 400, promo rejection 422, storage failure 502.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, "validation_failed", validationErr.Error())
		return
	}

	var promoErr *cart.PromoError
	if errors.As(err, &promoErr) {
		writeError(w, http.StatusUnprocessableEntity, "promo_rejected", promoErr.Reason)
		return
	}

	var storageErr *models.StorageError
	if errors.As(err, &storageErr) {
		writeError(w, http.StatusBadGateway, "storage_failure", storageErr.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

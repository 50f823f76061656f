package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// session extracts the session ID, minting one for first-time visitors,
// and echoes it on the response.
func session(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	view, err := s.carts.Get(r.Context(), session(w, r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID int  `json:"item_id"`
		Delta  *int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	delta := 1
	if req.Delta != nil {
		delta = *req.Delta
	}

	view, err := s.carts.AddItem(r.Context(), session(w, r), req.ItemID, delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "itemID must be an integer")
		return
	}

	view, err := s.carts.RemoveItem(r.Context(), session(w, r), itemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.carts.Clear(r.Context(), session(w, r)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	discount, err := s.carts.ApplyPromo(r.Context(), session(w, r), req.Code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"discount": discount})
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// handleMenu returns the full catalog sorted by identifier.
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Menu(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// handleUpsertMenu inserts or replaces catalog items. Administrative
// endpoint; an empty body seeds nothing.
func (s *Server) handleUpsertMenu(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []models.CatalogItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "items are required")
		return
	}

	if err := s.catalog.Upsert(r.Context(), req.Items); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"upserted": len(req.Items)})
}

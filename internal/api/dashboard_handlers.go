package api

import (
	"net/http"

	"github.com/campusdesk/registry-api/internal/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.DashboardStats(r.Context())
	if err != nil {
		writeStoreError(w, err, "Stats not found")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

package handler

import (
	"log/slog"
	"net/http"

	"braindumper/internal/domain/services"
	"braindumper/internal/httputil"
)

// StatsHandler handles dashboard statistics HTTP requests
type StatsHandler struct {
	service services.StatsService
	logger  *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service services.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

// Dashboard serves the derived dashboard statistics
// GET /api/dashboard/stats
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	stats, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, stats)
}

package handler

import (
	"log/slog"
	"net/http"

	"braindumper/internal/domain/services"
	"braindumper/internal/httputil"
)

// AnalyzeHandler handles brain dump analysis HTTP requests
type AnalyzeHandler struct {
	service services.AnalyzeService
	logger  *slog.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(service services.AnalyzeService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  logger,
	}
}

// AnalyzeDump analyzes a brain dump
// POST /api/dumps/analyze
func (h *AnalyzeHandler) AnalyzeDump(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.AnalyzeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	result, err := h.service.AnalyzeDump(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

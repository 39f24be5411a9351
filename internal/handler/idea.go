package handler

import (
	"log/slog"
	"net/http"

	"braindumper/internal/domain/services"
	"braindumper/internal/httputil"
)

// IdeaHandler handles idea document HTTP requests
type IdeaHandler struct {
	service services.IdeaService
	logger  *slog.Logger
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(service services.IdeaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{
		service: service,
		logger:  logger,
	}
}

// GenerateDocument generates a specification document from an idea
// POST /api/ideas/generate
func (h *IdeaHandler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.GenerateIdeaRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	doc, err := h.service.GenerateDocument(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// CreateIdea saves a generated document
// POST /api/ideas
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CreateIdeaRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	idea, err := h.service.CreateIdea(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, idea)
}

// ListIdeas lists the user's saved ideas, newest first
// GET /api/ideas
func (h *IdeaHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	ideas, err := h.service.ListIdeas(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ideas)
}

// GetIdea retrieves one idea
// GET /api/ideas/{id}
func (h *IdeaHandler) GetIdea(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	id := r.PathValue("id")

	idea, err := h.service.GetIdea(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, idea)
}

// DeleteIdea deletes an idea
// DELETE /api/ideas/{id}
func (h *IdeaHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	id := r.PathValue("id")

	if err := h.service.DeleteIdea(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"errors"
	"net/http"

	"braindumper/internal/domain"
	"braindumper/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrMalformedResponse):
		httputil.RespondError(w, http.StatusBadGateway, "AI response could not be understood")
	case errors.Is(err, domain.ErrIncompleteInput):
		httputil.RespondError(w, http.StatusServiceUnavailable, "some data could not be loaded")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

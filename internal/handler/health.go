package handler

import (
	"net/http"

	"braindumper/internal/httputil"
)

// Health reports service liveness
// GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

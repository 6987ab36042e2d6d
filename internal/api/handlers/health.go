package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint.
// The engine is stateless, so liveness does not depend on the planner or caches.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok", "service": "eld-log-service"}
	writeJSON(w, r, http.StatusOK, res)
}

package handlers

import (
	"context"
	"eld-log-service/internal/adapters/planner"
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/obs"
	"eld-log-service/internal/ports"
	"eld-log-service/internal/services"
	"encoding/json"
	"log"
	"net/http"
)

const maxBodyBytes = 4 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// decodePlan reads a planner-format trip plan from the request body.
// Validation errors are returned to the client with their field path.
func decodePlan(w http.ResponseWriter, r *http.Request) (*domain.TripPlan, bool) {
	defer r.Body.Close()

	plan, err := planner.DecodeTripPlan(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return plan, true
}

// correlationMatcher picks the configured correlation strategy. Proximity
// matching degrades to first-token matching when locations cannot be geocoded.
func correlationMatcher(ctx context.Context, cfg config.RenderConfig, g ports.Geocoder, plan *domain.TripPlan) ports.WaypointMatcher {
	if cfg.Matcher.Strategy != config.MatcherProximity || plan == nil {
		return services.FirstTokenMatcher{}
	}

	m, err := services.NewProximityMatcher(ctx, g, plan.LogEntries, cfg.Matcher.ProximityKm)
	if err != nil {
		log.Printf("req_id=%s proximity matcher unavailable, using first-token: %v", obs.RequestID(ctx), err)
	}
	return m
}

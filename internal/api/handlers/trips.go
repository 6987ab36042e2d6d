package handlers

import (
	"context"
	"eld-log-service/internal/adapters/render"
	"eld-log-service/internal/api/dto"
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/obs"
	"eld-log-service/internal/ports"
	"eld-log-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
)

const maxCycleHours = 70

type TripHandler struct {
	Planner  ports.TripPlanner
	Geocoder ports.Geocoder // optional; required by the proximity matcher
	Config   config.RenderConfig
}

// Render renders a trip plan posted in the planner's response format.
func (h *TripHandler) Render(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	plan, ok := decodePlan(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, h.renderView(r.Context(), plan))
}

// Plan forwards a trip request to the upstream planner and renders the result.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.TripRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	req.CurrentLocation = strings.TrimSpace(req.CurrentLocation)
	req.PickupLocation = strings.TrimSpace(req.PickupLocation)
	req.DropoffLocation = strings.TrimSpace(req.DropoffLocation)
	if req.CurrentLocation == "" || req.PickupLocation == "" || req.DropoffLocation == "" {
		writeError(w, r, http.StatusBadRequest, "current_location, pickup_location and dropoff_location are required")
		return
	}
	if req.CurrentCycleHours < 0 || req.CurrentCycleHours > maxCycleHours {
		writeError(w, r, http.StatusBadRequest, "current_cycle_hours must be between 0 and 70")
		return
	}

	if h.Planner == nil {
		writeError(w, r, http.StatusServiceUnavailable, "trip planner not configured")
		return
	}

	plan, err := h.Planner.PlanTrip(r.Context(), req.ToDomain())
	if err != nil {
		log.Printf("req_id=%s plan trip failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusBadGateway, "trip planner unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, h.renderView(r.Context(), plan))
}

func (h *TripHandler) renderView(ctx context.Context, plan *domain.TripPlan) dto.TripViewResponse {
	view := services.RenderTrip(plan, render.Axis(h.Config), correlationMatcher(ctx, h.Config, h.Geocoder, plan))
	return dto.FromTripView(view, h.Config)
}

package api

import (
	"eld-log-service/internal/api/handlers"
	"eld-log-service/internal/config"
	"eld-log-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// geocoder may be nil; proximity matching then falls back to first-token matching.
func NewRouter(planner ports.TripPlanner, geocoder ports.Geocoder, cfg config.RenderConfig) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Planner:  planner,
		Geocoder: geocoder,
		Config:   cfg,
	}
	chartHandler := &handlers.ChartHandler{Geocoder: geocoder, Config: cfg}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips/render", tripHandler.Render)
	mux.HandleFunc("/trips/plan", tripHandler.Plan)
	mux.HandleFunc("/trips/charts", chartHandler.Page)
	mux.HandleFunc("/trips/graph.png", chartHandler.Graph)

	return requestIDMiddleware(loggingMiddleware(mux))
}

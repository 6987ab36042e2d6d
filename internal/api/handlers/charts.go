package handlers

import (
	"bytes"
	"eld-log-service/internal/adapters/render"
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/obs"
	"eld-log-service/internal/ports"
	"eld-log-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
)

type ChartHandler struct {
	Geocoder ports.Geocoder // optional; required by the proximity matcher
	Config   config.RenderConfig
}

// Page renders the go-echarts HTML page for a posted trip plan.
func (h *ChartHandler) Page(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	plan, ok := decodePlan(w, r)
	if !ok {
		return
	}

	view := services.RenderTrip(plan, render.Axis(h.Config), correlationMatcher(r.Context(), h.Config, h.Geocoder, plan))

	var buf bytes.Buffer
	if err := render.ChartsPage(&buf, view, h.Config); err != nil {
		log.Printf("req_id=%s render charts failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Graph renders one day's duty graph as PNG. The day is chosen with ?day=N (0-based).
func (h *ChartHandler) Graph(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	day := 0
	if v := r.URL.Query().Get("day"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "day must be an integer")
			return
		}
		day = n
	}

	plan, ok := decodePlan(w, r)
	if !ok {
		return
	}

	dl, err := plan.Day(day)
	if errors.Is(err, domain.ErrDayOutOfRange) {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("day %d out of range (plan has %d days)", day, len(plan.DailyLogs)))
		return
	}

	var buf bytes.Buffer
	if err := render.DutyGraphPNG(&buf, services.RenderDay(dl, render.Axis(h.Config)), h.Config); err != nil {
		log.Printf("req_id=%s render graph failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

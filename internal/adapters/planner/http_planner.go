package planner

import (
	"bytes"
	"context"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/httpx"
	"eld-log-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultPlannerURL = "http://localhost:8000/api/plan-trip/"

// HTTPPlanner implements ports.TripPlanner by POSTing the trip request to the
// upstream planning service. Transient failures are retried with backoff.
type HTTPPlanner struct {
	session *http.Client
	url     string
}

func NewHTTPPlanner(url string) *HTTPPlanner {
	if url == "" {
		url = DefaultPlannerURL
	}
	return &HTTPPlanner{
		session: &http.Client{Timeout: 30 * time.Second},
		url:     url,
	}
}

func (p *HTTPPlanner) PlanTrip(ctx context.Context, req domain.TripRequest) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "planner.PlanTrip")(&err)

	if req.CurrentLocation == "" || req.PickupLocation == "" || req.DropoffLocation == "" {
		return nil, errors.New("plan trip: current, pickup and dropoff locations are required")
	}

	body, err := json.Marshal(RequestToWire(req))
	if err != nil {
		return nil, fmt.Errorf("plan trip: encode request: %w", err)
	}

	resp, err := httpx.DoWithRetry(ctx, p.session, func() (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}
	defer resp.Body.Close()

	plan, err := DecodeTripPlan(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return plan, nil
}

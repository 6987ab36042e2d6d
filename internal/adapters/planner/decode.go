package planner

import (
	"eld-log-service/internal/domain"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeTripPlan reads a planner response body and converts it to the domain plan.
func DecodeTripPlan(r io.Reader) (*domain.TripPlan, error) {
	var wire TripPlanJSON
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode trip plan: %w", err)
	}

	plan, err := wire.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("decode trip plan: %w", err)
	}

	return plan, nil
}

package planner

import (
	"context"
	"eld-log-service/internal/domain"
	"fmt"
	"os"
)

// FilePlanner serves a previously saved planner response from disk,
// ignoring the request. Used by tripview and for offline rendering.
type FilePlanner struct {
	Path string
}

func (p FilePlanner) PlanTrip(ctx context.Context, _ domain.TripRequest) (*domain.TripPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("open trip plan: %w", err)
	}
	defer f.Close()

	return DecodeTripPlan(f)
}

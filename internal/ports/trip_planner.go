package ports

import (
	"context"
	"eld-log-service/internal/domain"
)

// Contract for the external trip-planning collaborator that produces duty
// segments, log entries and route geometry for a trip request.
type TripPlanner interface {
	// Return the planned trip for the given request.
	PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error)
}

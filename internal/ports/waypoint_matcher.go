package ports

import "eld-log-service/internal/domain"

// Strategy for associating a log entry with the route waypoint it most likely
// occurred at. Implementations must be deterministic for identical input.
type WaypointMatcher interface {
	// Return the matched waypoint and true, or false when nothing matches.
	Match(entry domain.LogEntry, waypoints []domain.Waypoint) (domain.Waypoint, bool)
}

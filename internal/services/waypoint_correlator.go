package services

import (
	"eld-log-service/internal/domain"
	"eld-log-service/internal/ports"
	"strings"
)

// CorrelateStops matches non-driving log entries to route waypoints for the map overlay.
//
// Driving entries and entries without a matching waypoint are dropped; neither is
// an error. Each kept entry is annotated with the matched waypoint's coordinates.
// Output preserves input order. A nil matcher uses FirstTokenMatcher.
func CorrelateStops(
	entries []domain.LogEntry,
	waypoints []domain.Waypoint,
	matcher ports.WaypointMatcher,
) []domain.CorrelatedStop {
	if matcher == nil {
		matcher = FirstTokenMatcher{}
	}

	stops := make([]domain.CorrelatedStop, 0, len(entries))
	for _, e := range entries {
		if e.Status == domain.Driving {
			continue
		}

		wp, ok := matcher.Match(e, waypoints)
		if !ok {
			continue
		}

		stops = append(stops, domain.CorrelatedStop{
			Entry:       e,
			Waypoint:    wp,
			Coordinates: wp.Coordinates,
		})
	}

	return stops
}

// FirstTokenMatcher matches on location names.
//
// The entry location is truncated to its first comma-separated token and
// lower-cased ("Chicago, IL" -> "chicago"); the first waypoint whose lower-cased
// name contains that key wins. Two waypoints sharing a city name resolve to the
// earlier one, not necessarily the closest.
type FirstTokenMatcher struct{}

func (FirstTokenMatcher) Match(entry domain.LogEntry, waypoints []domain.Waypoint) (domain.Waypoint, bool) {
	key := LocationKey(entry.Location)
	for _, wp := range waypoints {
		if strings.Contains(strings.ToLower(wp.Name), key) {
			return wp, true
		}
	}
	return domain.Waypoint{}, false
}

// LocationKey is the lower-cased first comma-separated token of a location.
// An empty location yields an empty key, which every waypoint name contains.
func LocationKey(location string) string {
	first, _, _ := strings.Cut(location, ",")
	return strings.ToLower(first)
}

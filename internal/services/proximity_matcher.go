package services

import (
	"context"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/obs"
	"eld-log-service/internal/ports"
	"errors"
	"fmt"
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

var ErrNoGeocoder = errors.New("proximity matching needs a geocoder")

// ProximityMatcher matches entries to the geographically nearest waypoint.
//
// Locations holds coordinates already resolved for entry locations (see
// ResolveEntryLocations); the matcher itself does no I/O. Equal distances keep
// the earlier waypoint. When a location is unresolved or the nearest waypoint is
// farther than MaxDistanceKm, the decision is delegated to Fallback.
type ProximityMatcher struct {
	Locations     map[string]domain.Coordinates
	MaxDistanceKm float64
	Fallback      ports.WaypointMatcher
}

func (m ProximityMatcher) Match(entry domain.LogEntry, waypoints []domain.Waypoint) (domain.Waypoint, bool) {
	if c, ok := m.Locations[NormalizeLocation(entry.Location)]; ok && len(waypoints) > 0 {
		best := 0
		bestKm := HaversineKm(c, waypoints[0].Coordinates)
		for i := 1; i < len(waypoints); i++ {
			if d := HaversineKm(c, waypoints[i].Coordinates); d < bestKm {
				best = i
				bestKm = d
			}
		}

		// A non-positive radius means any distance is accepted.
		if m.MaxDistanceKm <= 0 || bestKm <= m.MaxDistanceKm {
			return waypoints[best], true
		}
	}

	if m.Fallback != nil {
		return m.Fallback.Match(entry, waypoints)
	}
	return domain.Waypoint{}, false
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// NormalizeLocation collapses whitespace so lookups use consistent keys.
func NormalizeLocation(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ResolveEntryLocations geocodes the distinct locations of non-driving entries.
// It runs before rendering so that ProximityMatcher stays free of I/O.
func ResolveEntryLocations(
	ctx context.Context,
	geocoder ports.Geocoder,
	entries []domain.LogEntry,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "services.ResolveEntryLocations")(&err)

	seen := make(map[string]struct{}, len(entries))
	addresses := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Status == domain.Driving {
			continue
		}

		loc := NormalizeLocation(e.Location)
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		addresses = append(addresses, loc)
	}

	if len(addresses) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	resolved, err := geocoder.Geocode(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("resolve entry locations: %w", err)
	}

	return resolved, nil
}

// NewProximityMatcher resolves entry locations with g and returns a
// ProximityMatcher over first-token matching. If g is nil or geocoding fails
// it returns FirstTokenMatcher together with the reason.
func NewProximityMatcher(
	ctx context.Context,
	g ports.Geocoder,
	entries []domain.LogEntry,
	maxDistanceKm float64,
) (ports.WaypointMatcher, error) {
	fallback := FirstTokenMatcher{}
	if g == nil {
		return fallback, ErrNoGeocoder
	}

	locations, err := ResolveEntryLocations(ctx, g, entries)
	if err != nil {
		return fallback, err
	}

	return ProximityMatcher{
		Locations:     locations,
		MaxDistanceKm: maxDistanceKm,
		Fallback:      fallback,
	}, nil
}

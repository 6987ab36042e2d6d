package ports

import (
	"context"
	"eld-log-service/internal/domain"
)

// Contract for resolving free-text place descriptions to coordinates.
type Geocoder interface {
	// Resolve each address; addresses without a result are absent from the map.
	Geocode(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
}

// Persistent cache of geocoder responses keyed by normalized address.
type GeocodeCache interface {
	// Fetch cached coordinates for the given addresses.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	// Store address -> coordinate mappings.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

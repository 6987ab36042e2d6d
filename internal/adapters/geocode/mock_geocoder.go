package geocode

import (
	"context"
	"eld-log-service/internal/domain"
)

// MockGeocoder resolves addresses from a fixed table and counts lookups.
type MockGeocoder struct {
	m     map[string]domain.Coordinates
	Calls int
}

func NewMockGeocoder(known map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(known))
	for k, v := range known {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	g.Calls++

	out := make(map[string]domain.Coordinates, len(addresses))
	for _, a := range addresses {
		if c, ok := g.m[a]; ok {
			out[a] = c
		}
	}
	return out, nil
}

package cache

import (
	"context"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/ports"
	"encoding/json"
	"fmt"
	"os"
)

type seedEntry struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// SeedFromJSON loads known address coordinates from a JSON array file into
// the cache and returns the number of entries written.
func SeedFromJSON(ctx context.Context, cache ports.GeocodeCache, path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("seed geocode cache: read %s: %w", path, err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return 0, fmt.Errorf("seed geocode cache: decode %s: %w", path, err)
	}

	results := make(map[string]domain.Coordinates, len(entries))
	for i, e := range entries {
		if e.Address == "" {
			return 0, fmt.Errorf("seed geocode cache: entry %d: empty address", i)
		}
		results[e.Address] = domain.Coordinates{Lat: e.Lat, Lon: e.Lon}
	}

	if err := cache.PutMany(ctx, results); err != nil {
		return 0, fmt.Errorf("seed geocode cache: %w", err)
	}

	return len(results), nil
}

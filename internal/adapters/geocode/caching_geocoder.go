package geocode

import (
	"context"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/obs"
	"eld-log-service/internal/ports"
	"errors"
	"fmt"
	"log"
)

// CachingGeocoder answers from Cache first and asks Next only for misses.
// Fresh results are written back; a failed write is logged, not returned.
// With a nil Next it serves cached addresses only.
type CachingGeocoder struct {
	Cache ports.GeocodeCache
	Next  ports.Geocoder
}

func NewCachingGeocoder(cache ports.GeocodeCache, next ports.Geocoder) *CachingGeocoder {
	return &CachingGeocoder{Cache: cache, Next: next}
}

func (g *CachingGeocoder) Geocode(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.Caching")(&err)

	if g.Cache == nil {
		return nil, errors.New("caching geocoder: cache is nil")
	}

	cached, err := g.Cache.GetMany(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("caching geocoder: read cache: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(addresses))
	var missing []string
	for _, a := range addresses {
		if c, ok := cached[a]; ok {
			out[a] = c
			continue
		}
		missing = append(missing, a)
	}

	if len(missing) == 0 || g.Next == nil {
		return out, nil
	}

	fresh, err := g.Next.Geocode(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("caching geocoder: %w", err)
	}

	for a, c := range fresh {
		out[a] = c
	}

	if len(fresh) > 0 {
		if err := g.Cache.PutMany(ctx, fresh); err != nil {
			log.Printf("req_id=%s op=geocode.Caching warn=%q", obs.RequestID(ctx), "cache write failed: "+err.Error())
		}
	}

	return out, nil
}

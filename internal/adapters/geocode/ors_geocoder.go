package geocode

import (
	"context"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/httpx"
	"eld-log-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultORSBaseURL = "https://api.openrouteservice.org"

// ORSGeocoder implements ports.Geocoder using OpenRouteService (/geocode/search).
//
// Addresses are resolved one request at a time with retry/backoff on transient
// failures. The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	country string
}

// NewORSGeocoder builds a geocoder. An empty baseURL selects the public ORS API.
func NewORSGeocoder(apiKey, baseURL string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = defaultORSBaseURL
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		country: "US",
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves each distinct address. Addresses with no result are left
// out of the returned map; any transport or decode failure aborts the batch.
func (o *ORSGeocoder) Geocode(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	out := make(map[string]domain.Coordinates, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}

		c, ok, err := o.geocodeOne(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("geocode %q: %w", a, err)
		}
		if ok {
			out[a] = c
		}
	}

	return out, nil
}

func (o *ORSGeocoder) geocodeOne(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := httpx.DoWithRetry(ctx, o.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", o.apiKey)
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("text", address)
		q.Set("boundary.country", o.country)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, false, nil
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, false, fmt.Errorf("invalid coordinate format: %v", coords)
	}

	// GeoJSON order is [lon, lat].
	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, true, nil
}

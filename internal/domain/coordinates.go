package domain

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lng], the order used by waypoints and map markers.
func (c Coordinates) LatLng() []float64 { return []float64{c.Lat, c.Lon} }

// Return coordinates as [lng, lat], the GeoJSON order used by route geometry
// and external geocoding APIs.
func (c Coordinates) LngLat() []float64 { return []float64{c.Lon, c.Lat} }

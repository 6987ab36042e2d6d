package domain

// Represents a named geographic stop on a planned route.
type Waypoint struct {
	Name        string
	Coordinates Coordinates
}

// Represents the route returned by the trip planner.
// Waypoints are in travel order (start, intermediate stops, destination).
// Geometry is the plotted path. Route carries no link to the daily logs;
// stops are correlated to waypoints only at render time.
type Route struct {
	Waypoints          []Waypoint
	Geometry           []Coordinates
	TotalDistanceMiles float64
	TotalDurationHours float64
}

package domain

import "errors"

var ErrDayOutOfRange = errors.New("day index out of range")

// Inputs collected for a trip plan request.
type TripRequest struct {
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
}

// Everything the trip planner returns for one trip.
// It is read-only input for the rendering engine.
type TripPlan struct {
	Trip       TripRequest
	Route      Route
	DailyLogs  []DailyLog
	LogEntries []LogEntry
}

// Day returns the daily log at index i.
func (p *TripPlan) Day(i int) (DailyLog, error) {
	if i < 0 || i >= len(p.DailyLogs) {
		return DailyLog{}, ErrDayOutOfRange
	}
	return p.DailyLogs[i], nil
}

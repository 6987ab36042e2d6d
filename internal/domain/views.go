package domain

// One hour-wide bucket of the 24-hour grid.
type GridSlot struct {
	Hour      int
	HourLabel string
	Status    DutyStatus
	Location  string
	Remarks   string
}

// Accumulated hours per duty status. Every status is always present.
type StatusTotals map[DutyStatus]float64

// A segment placed on the continuous graphical timeline.
type TimelineBar struct {
	Status  DutyStatus
	Row     int
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Start   ClockTime
	End     ClockTime
	Remarks string
}

// A non-driving log entry matched to a route waypoint for map overlay.
type CorrelatedStop struct {
	Entry       LogEntry
	Waypoint    Waypoint
	Coordinates Coordinates
}

// HoursPerDay is the number of slots in a HourlyGrid.
const HoursPerDay = 24

// Gap-free 24-hour occupancy grid, one slot per hour 0..23.
type HourlyGrid [HoursPerDay]GridSlot

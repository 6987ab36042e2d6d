package domain

import "time"

// One contiguous interval of a single duty status within one calendar day.
// Start and End are on the same day; segments never cross midnight.
type DutySegment struct {
	Status   DutyStatus
	Start    ClockTime
	End      ClockTime
	Location string
	Note     string
}

// DurationHours is End-Start in hours, never negative.
func (s DutySegment) DurationHours() float64 {
	if s.End <= s.Start {
		return 0
	}
	return float64(s.End-s.Start) / 60
}

// One calendar day's record.
// Segments are ordered by start time and owned by the log. Totals are not
// stored here; they are always derived from Segments.
type DailyLog struct {
	DateStart time.Time
	Segments  []DutySegment
}

// Trip-wide flat view of a duty-status interval, as used for the map overlay.
type LogEntry struct {
	Status   DutyStatus
	Start    ClockTime
	End      ClockTime
	Location string
	Remarks  string
}

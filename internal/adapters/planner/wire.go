package planner

import (
	"bytes"
	"eld-log-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedDate = errors.New("malformed date")

// FlexFloat decodes a JSON number or a numeric string. The planner emits
// coordinates and form values either way.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse number %q: %w", s, err)
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

type TripRequestJSON struct {
	CurrentLocation   string    `json:"current_location"`
	PickupLocation    string    `json:"pickup_location"`
	DropoffLocation   string    `json:"dropoff_location"`
	CurrentCycleHours FlexFloat `json:"current_cycle_hours"`
}

type WaypointJSON struct {
	Name        string      `json:"name"`
	Coordinates []FlexFloat `json:"coordinates"`
}

type GeometryJSON struct {
	Type        string        `json:"type,omitempty"`
	Coordinates [][]FlexFloat `json:"coordinates"`
}

type RouteJSON struct {
	Waypoints     []WaypointJSON `json:"waypoints"`
	Geometry      *GeometryJSON  `json:"geometry,omitempty"`
	TotalDistance FlexFloat      `json:"total_distance"`
	TotalDuration FlexFloat      `json:"total_duration"`
}

type SegmentJSON struct {
	Status        string   `json:"status"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Location      string   `json:"location"`
	Note          string   `json:"note"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
}

type DailyLogJSON struct {
	DateStart string        `json:"date_start"`
	Segments  []SegmentJSON `json:"segments"`
	// Totals sent by the planner are accepted but never trusted.
	Totals map[string]float64 `json:"totals,omitempty"`
}

type LogEntryJSON struct {
	DutyStatus string `json:"duty_status"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Location   string `json:"location"`
	Remarks    string `json:"remarks"`
}

// TripPlanJSON is the planner's response body.
type TripPlanJSON struct {
	Trip       TripRequestJSON `json:"trip"`
	Route      RouteJSON       `json:"route"`
	DailyLogs  []DailyLogJSON  `json:"daily_logs"`
	LogEntries []LogEntryJSON  `json:"log_entries"`
}

func RequestToWire(r domain.TripRequest) TripRequestJSON {
	return TripRequestJSON{
		CurrentLocation:   r.CurrentLocation,
		PickupLocation:    r.PickupLocation,
		DropoffLocation:   r.DropoffLocation,
		CurrentCycleHours: FlexFloat(r.CurrentCycleHours),
	}
}

func (r TripRequestJSON) ToDomain() domain.TripRequest {
	return domain.TripRequest{
		CurrentLocation:   r.CurrentLocation,
		PickupLocation:    r.PickupLocation,
		DropoffLocation:   r.DropoffLocation,
		CurrentCycleHours: float64(r.CurrentCycleHours),
	}
}

// ToDomain validates the wire plan and converts it. Errors name the offending
// field, e.g. "daily_logs[1].segments[0].start_time: ...", and wrap
// domain.ErrMalformedTime, domain.ErrUnknownStatus or ErrMalformedDate.
func (p TripPlanJSON) ToDomain() (*domain.TripPlan, error) {
	route, err := p.Route.toDomain()
	if err != nil {
		return nil, err
	}

	logs := make([]domain.DailyLog, 0, len(p.DailyLogs))
	for i, dl := range p.DailyLogs {
		log, err := dl.toDomain(fmt.Sprintf("daily_logs[%d]", i))
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	entries := make([]domain.LogEntry, 0, len(p.LogEntries))
	for i, e := range p.LogEntries {
		entry, err := e.toDomain(fmt.Sprintf("log_entries[%d]", i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &domain.TripPlan{
		Trip:       p.Trip.ToDomain(),
		Route:      route,
		DailyLogs:  logs,
		LogEntries: entries,
	}, nil
}

func (r RouteJSON) toDomain() (domain.Route, error) {
	waypoints := make([]domain.Waypoint, 0, len(r.Waypoints))
	for i, wp := range r.Waypoints {
		if len(wp.Coordinates) != 2 {
			return domain.Route{}, fmt.Errorf("route.waypoints[%d].coordinates: want [lat, lng], got %d values", i, len(wp.Coordinates))
		}
		waypoints = append(waypoints, domain.Waypoint{
			Name:        wp.Name,
			Coordinates: domain.Coordinates{Lat: float64(wp.Coordinates[0]), Lon: float64(wp.Coordinates[1])},
		})
	}

	var geometry []domain.Coordinates
	if r.Geometry != nil {
		geometry = make([]domain.Coordinates, 0, len(r.Geometry.Coordinates))
		for i, c := range r.Geometry.Coordinates {
			if len(c) != 2 {
				return domain.Route{}, fmt.Errorf("route.geometry.coordinates[%d]: want [lng, lat], got %d values", i, len(c))
			}
			geometry = append(geometry, domain.Coordinates{Lat: float64(c[1]), Lon: float64(c[0])})
		}
	}

	return domain.Route{
		Waypoints:          waypoints,
		Geometry:           geometry,
		TotalDistanceMiles: float64(r.TotalDistance),
		TotalDurationHours: float64(r.TotalDuration),
	}, nil
}

func (dl DailyLogJSON) toDomain(path string) (domain.DailyLog, error) {
	date, err := parseDate(dl.DateStart)
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("%s.date_start: %w", path, err)
	}

	segments := make([]domain.DutySegment, 0, len(dl.Segments))
	for i, s := range dl.Segments {
		segPath := fmt.Sprintf("%s.segments[%d]", path, i)

		status, err := domain.ParseDutyStatus(s.Status)
		if err != nil {
			return domain.DailyLog{}, fmt.Errorf("%s.status: %w", segPath, err)
		}
		start, err := domain.ParseClockTime(s.StartTime)
		if err != nil {
			return domain.DailyLog{}, fmt.Errorf("%s.start_time: %w", segPath, err)
		}
		end, err := domain.ParseClockTime(s.EndTime)
		if err != nil {
			return domain.DailyLog{}, fmt.Errorf("%s.end_time: %w", segPath, err)
		}

		segments = append(segments, domain.DutySegment{
			Status:   status,
			Start:    start,
			End:      end,
			Location: s.Location,
			Note:     s.Note,
		})
	}

	return domain.DailyLog{DateStart: date, Segments: segments}, nil
}

func (e LogEntryJSON) toDomain(path string) (domain.LogEntry, error) {
	status, err := domain.ParseDutyStatus(e.DutyStatus)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("%s.duty_status: %w", path, err)
	}
	start, err := domain.ParseClockTime(e.StartTime)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("%s.start_time: %w", path, err)
	}
	end, err := domain.ParseClockTime(e.EndTime)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("%s.end_time: %w", path, err)
	}

	return domain.LogEntry{
		Status:   status,
		Start:    start,
		End:      end,
		Location: e.Location,
		Remarks:  e.Remarks,
	}, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
}

// parseDate accepts a plain date or an ISO timestamp. An empty string is the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: %w", s, ErrMalformedDate)
}

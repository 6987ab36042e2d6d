package dto

import (
	"eld-log-service/internal/adapters/planner"
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/services"
	"fmt"
)

// TripRequest is the trip form payload. Form clients post cycle hours as
// the raw input string, so both "12" and 12 are accepted.
type TripRequest struct {
	CurrentLocation   string            `json:"current_location"`
	PickupLocation    string            `json:"pickup_location"`
	DropoffLocation   string            `json:"dropoff_location"`
	CurrentCycleHours planner.FlexFloat `json:"current_cycle_hours"`
}

type WaypointResponse struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"`
	Role        string    `json:"role"`
}

type RouteResponse struct {
	Waypoints          []WaypointResponse `json:"waypoints"`
	Path               [][]float64        `json:"path"`
	TotalDistanceMiles float64            `json:"total_distance"`
	TotalDurationHours float64            `json:"total_duration"`
}

type SegmentResponse struct {
	Status        string  `json:"status"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Location      string  `json:"location"`
	Note          string  `json:"note"`
	DurationHours float64 `json:"duration_hours"`
	DurationLabel string  `json:"duration_label"`
}

type GridSlotResponse struct {
	Hour      int    `json:"hour"`
	HourLabel string `json:"hour_label"`
	Status    string `json:"status"`
	Location  string `json:"location"`
	Remarks   string `json:"remarks"`
}

type BarResponse struct {
	Status    string  `json:"status"`
	Row       int     `json:"row"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Remarks   string  `json:"remarks"`
	Color     string  `json:"color"`
}

type DayResponse struct {
	DateStart     string             `json:"date_start"`
	Segments      []SegmentResponse  `json:"segments"`
	Grid          []GridSlotResponse `json:"grid"`
	Totals        map[string]float64 `json:"totals"`
	TotalsLabel   map[string]string  `json:"totals_label"`
	CoverageHours float64            `json:"coverage_hours"`
	CompleteDay   bool               `json:"complete_day"`
	Bars          []BarResponse      `json:"bars"`
}

type StopResponse struct {
	DutyStatus  string    `json:"duty_status"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Location    string    `json:"location"`
	Remarks     string    `json:"remarks"`
	Waypoint    string    `json:"waypoint"`
	Coordinates []float64 `json:"coordinates"`
	MarkerColor string    `json:"marker_color"`
}

type TimelineResponse struct {
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	MinBarWidth float64   `json:"min_bar_width"`
	RowHeight   float64   `json:"row_height"`
	Rows        []string  `json:"rows"`
	HourTicks   []float64 `json:"hour_ticks"`
}

type TripViewResponse struct {
	Trip     TripRequest                   `json:"trip"`
	Route    RouteResponse                 `json:"route"`
	Days     []DayResponse                 `json:"daily_logs"`
	Stops    []StopResponse                `json:"stops"`
	Timeline TimelineResponse              `json:"timeline"`
	Statuses map[string]config.StatusStyle `json:"statuses"`
	Map      config.MapConfig              `json:"map"`
}

func (r TripRequest) ToDomain() domain.TripRequest {
	return domain.TripRequest{
		CurrentLocation:   r.CurrentLocation,
		PickupLocation:    r.PickupLocation,
		DropoffLocation:   r.DropoffLocation,
		CurrentCycleHours: float64(r.CurrentCycleHours),
	}
}

// waypointRole labels markers the way the map popups do.
func waypointRole(i, n int) string {
	switch {
	case i == 0:
		return "Start Location"
	case i == n-1:
		return "Destination"
	default:
		return fmt.Sprintf("Stop %d", i+1)
	}
}

func FromTripView(view services.TripView, cfg config.RenderConfig) TripViewResponse {
	res := TripViewResponse{
		Trip: TripRequest{
			CurrentLocation:   view.Trip.CurrentLocation,
			PickupLocation:    view.Trip.PickupLocation,
			DropoffLocation:   view.Trip.DropoffLocation,
			CurrentCycleHours: planner.FlexFloat(view.Trip.CurrentCycleHours),
		},
		Route:    fromRoute(view.Route),
		Days:     make([]DayResponse, 0, len(view.Days)),
		Stops:    make([]StopResponse, 0, len(view.Stops)),
		Statuses: cfg.Statuses,
		Map:      cfg.Map,
		Timeline: TimelineResponse{
			Width:       view.Axis.Width,
			Height:      view.Axis.Height,
			MinBarWidth: view.Axis.MinBarWidth,
			RowHeight:   view.Axis.RowHeight(),
			HourTicks:   view.HourTicks,
		},
	}

	for _, s := range domain.AllDutyStatuses() {
		res.Timeline.Rows = append(res.Timeline.Rows, cfg.Style(s).ShortLabel)
	}

	for _, day := range view.Days {
		res.Days = append(res.Days, fromDay(day, cfg))
	}

	for _, s := range view.Stops {
		res.Stops = append(res.Stops, StopResponse{
			DutyStatus:  s.Entry.Status.String(),
			StartTime:   s.Entry.Start.String(),
			EndTime:     s.Entry.End.String(),
			Location:    s.Entry.Location,
			Remarks:     s.Entry.Remarks,
			Waypoint:    s.Waypoint.Name,
			Coordinates: s.Coordinates.LatLng(),
			MarkerColor: cfg.Style(s.Entry.Status).MarkerColor,
		})
	}

	return res
}

func fromRoute(r domain.Route) RouteResponse {
	res := RouteResponse{
		Waypoints:          make([]WaypointResponse, 0, len(r.Waypoints)),
		Path:               make([][]float64, 0, len(r.Geometry)),
		TotalDistanceMiles: r.TotalDistanceMiles,
		TotalDurationHours: r.TotalDurationHours,
	}
	for i, wp := range r.Waypoints {
		res.Waypoints = append(res.Waypoints, WaypointResponse{
			Name:        wp.Name,
			Coordinates: wp.Coordinates.LatLng(),
			Role:        waypointRole(i, len(r.Waypoints)),
		})
	}
	for _, c := range r.Geometry {
		res.Path = append(res.Path, c.LatLng())
	}
	return res
}

func fromDay(day services.DayView, cfg config.RenderConfig) DayResponse {
	res := DayResponse{
		Segments:      make([]SegmentResponse, 0, len(day.Segments)),
		Grid:          make([]GridSlotResponse, 0, len(day.Grid)),
		Totals:        make(map[string]float64, len(day.Totals)),
		TotalsLabel:   make(map[string]string, len(day.Totals)),
		CoverageHours: day.CoverageHours,
		CompleteDay:   day.CompleteDay,
		Bars:          make([]BarResponse, 0, len(day.Bars)),
	}
	if !day.DateStart.IsZero() {
		res.DateStart = day.DateStart.Format("2006-01-02")
	}

	for _, s := range day.Segments {
		res.Segments = append(res.Segments, SegmentResponse{
			Status:        s.Status.String(),
			StartTime:     s.Start.String(),
			EndTime:       s.End.String(),
			Location:      s.Location,
			Note:          s.Note,
			DurationHours: s.DurationHours(),
			DurationLabel: fmt.Sprintf("%.2f", s.DurationHours()),
		})
	}

	for _, slot := range day.Grid {
		res.Grid = append(res.Grid, GridSlotResponse{
			Hour:      slot.Hour,
			HourLabel: slot.HourLabel,
			Status:    slot.Status.String(),
			Location:  slot.Location,
			Remarks:   slot.Remarks,
		})
	}

	for status, hours := range day.Totals {
		res.Totals[status.String()] = hours
		res.TotalsLabel[status.String()] = fmt.Sprintf("%.1f", hours)
	}

	for _, b := range day.Bars {
		res.Bars = append(res.Bars, BarResponse{
			Status:    b.Status.String(),
			Row:       b.Row,
			X:         b.X,
			Y:         b.Y,
			Width:     b.Width,
			Height:    b.Height,
			StartTime: b.Start.String(),
			EndTime:   b.End.String(),
			Remarks:   b.Remarks,
			Color:     cfg.Style(b.Status).GraphColor,
		})
	}

	return res
}

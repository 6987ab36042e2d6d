package services

import (
	"eld-log-service/internal/domain"
	"eld-log-service/internal/ports"
	"time"
)

// Rendered view of one daily log. Every field is derived from the segments.
type DayView struct {
	DateStart     time.Time
	Segments      []domain.DutySegment
	Grid          domain.HourlyGrid
	Totals        domain.StatusTotals
	CoverageHours float64
	CompleteDay   bool
	Bars          []domain.TimelineBar
}

// Rendered view of a whole trip.
type TripView struct {
	Trip      domain.TripRequest
	Route     domain.Route
	Days      []DayView
	Stops     []domain.CorrelatedStop
	Axis      TimelineAxis
	HourTicks []float64
}

// RenderDay composes the grid, totals and timeline views of one day.
// The views are independent; none consumes another's output.
func RenderDay(log domain.DailyLog, axis TimelineAxis) DayView {
	totals := AggregateStatusTotals(log.Segments)

	return DayView{
		DateStart:     log.DateStart,
		Segments:      log.Segments,
		Grid:          ProjectHourlyGrid(log.Segments),
		Totals:        totals,
		CoverageHours: CoverageHours(totals),
		CompleteDay:   IsCompleteDay(totals),
		Bars:          LayoutTimeline(log.Segments, axis),
	}
}

// RenderTrip recomputes every view of a trip plan. Nothing is cached, so
// repeated calls with the same plan yield identical views.
func RenderTrip(plan *domain.TripPlan, axis TimelineAxis, matcher ports.WaypointMatcher) TripView {
	view := TripView{
		Days:      []DayView{},
		Stops:     []domain.CorrelatedStop{},
		Axis:      axis,
		HourTicks: HourTicks(axis.Width),
	}
	if plan == nil {
		return view
	}

	view.Trip = plan.Trip
	view.Route = plan.Route

	view.Days = make([]DayView, 0, len(plan.DailyLogs))
	for _, log := range plan.DailyLogs {
		view.Days = append(view.Days, RenderDay(log, axis))
	}

	view.Stops = CorrelateStops(plan.LogEntries, plan.Route.Waypoints, matcher)

	return view
}

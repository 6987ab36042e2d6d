package render

import (
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/services"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	hourStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	cellText    = lipgloss.Color("#111827")
)

// TerminalDay renders one day as a coloured 24-cell grid followed by totals.
func TerminalDay(i int, day services.DayView, cfg config.RenderConfig) string {
	var b strings.Builder

	title := fmt.Sprintf("Day %d", i+1)
	if !day.DateStart.IsZero() {
		title += " " + day.DateStart.Format("2006-01-02")
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	hours := make([]string, 0, domain.HoursPerDay)
	cells := make([]string, 0, domain.HoursPerDay)
	for _, slot := range day.Grid {
		hours = append(hours, fmt.Sprintf("%02d", slot.Hour))
		cell := lipgloss.NewStyle().
			Background(lipgloss.Color(cfg.Style(slot.Status).GridColor)).
			Foreground(cellText)
		cells = append(cells, cell.Render(statusCode(cfg, slot.Status)))
	}
	b.WriteString(hourStyle.Render(strings.Join(hours, " ")))
	b.WriteString("\n")
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")

	totals := make([]string, 0, len(domain.AllDutyStatuses()))
	for _, s := range domain.AllDutyStatuses() {
		totals = append(totals, fmt.Sprintf("%s=%s %s", statusCode(cfg, s), cfg.Style(s).Label, FormatHours(day.Totals[s])))
	}
	b.WriteString(strings.Join(totals, "  "))
	if !day.CompleteDay {
		b.WriteString(fmt.Sprintf("  (covers %s of 24h)", FormatHours(day.CoverageHours)))
	}
	b.WriteString("\n")

	return b.String()
}

// TerminalStops lists correlated stops, one per line.
func TerminalStops(stops []domain.CorrelatedStop, cfg config.RenderConfig) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Stops"))
	b.WriteString("\n")

	if len(stops) == 0 {
		b.WriteString("  none\n")
		return b.String()
	}

	for _, s := range stops {
		e := s.Entry
		fmt.Fprintf(&b, "  %s-%s %-22s %s (%.4f, %.4f)",
			e.Start, e.End, cfg.Style(e.Status).Label, s.Waypoint.Name, s.Coordinates.Lat, s.Coordinates.Lon)
		if e.Remarks != "" {
			fmt.Fprintf(&b, " %q", e.Remarks)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TerminalTrip renders every day followed by the stop list.
func TerminalTrip(view services.TripView, cfg config.RenderConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%s -> %s -> %s",
		view.Trip.CurrentLocation, view.Trip.PickupLocation, view.Trip.DropoffLocation)))
	fmt.Fprintf(&b, "%.1f miles, %.1f hours, cycle used %.1fh\n\n",
		view.Route.TotalDistanceMiles, view.Route.TotalDurationHours, view.Trip.CurrentCycleHours)

	for i, day := range view.Days {
		b.WriteString(TerminalDay(i, day, cfg))
		b.WriteString("\n")
	}
	b.WriteString(TerminalStops(view.Stops, cfg))
	return b.String()
}

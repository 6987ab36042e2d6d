package render

import (
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/services"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartsPage writes an HTML page with a stacked hours-per-status bar chart for
// the whole trip and one hourly duty line per day.
func ChartsPage(w io.Writer, view services.TripView, cfg config.RenderConfig) error {
	page := components.NewPage()
	page.AddCharts(totalsChart(view, cfg))

	for i, day := range view.Days {
		page.AddCharts(dayChart(i, day, cfg))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts page: %w", err)
	}
	return nil
}

func dayLabel(i int, day services.DayView) string {
	if day.DateStart.IsZero() {
		return fmt.Sprintf("Day %d", i+1)
	}
	return day.DateStart.Format("Mon Jan 2")
}

func totalsChart(view services.TripView, cfg config.RenderConfig) *charts.Bar {
	days := make([]string, len(view.Days))
	for i, day := range view.Days {
		days[i] = dayLabel(i, day)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Trip Duty Status", Width: "100%", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Hours per duty status",
			Subtitle: fmt.Sprintf("%s to %s, %.1f miles", view.Trip.CurrentLocation, view.Trip.DropoffLocation, view.Route.TotalDistanceMiles),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "hours", Max: domain.HoursPerDay}),
	)
	bar.SetXAxis(days)

	for _, s := range domain.AllDutyStatuses() {
		data := make([]opts.BarData, len(view.Days))
		for i, day := range view.Days {
			data[i] = opts.BarData{Value: day.Totals[s]}
		}

		style := cfg.Style(s)
		bar.AddSeries(style.Label, data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "hours"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: style.GraphColor}),
		)
	}

	return bar
}

// dayChart plots the grid row of each hour, top row off duty.
func dayChart(i int, day services.DayView, cfg config.RenderConfig) *charts.Line {
	hours := make([]string, domain.HoursPerDay)
	data := make([]opts.LineData, domain.HoursPerDay)
	for h, slot := range day.Grid {
		hours[h] = slot.HourLabel
		level := len(domain.AllDutyStatuses()) - 1 - services.StatusRow(slot.Status)
		data[h] = opts.LineData{Value: level, Name: cfg.Style(slot.Status).Label}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "260px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    dayLabel(i, day),
			Subtitle: totalsSubtitle(day, cfg),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "status", Min: 0, Max: 3}),
	)
	line.SetXAxis(hours).AddSeries("status", data)

	return line
}

func totalsSubtitle(day services.DayView, cfg config.RenderConfig) string {
	s := ""
	for i, st := range domain.AllDutyStatuses() {
		if i > 0 {
			s += "  "
		}
		s += cfg.Style(st).ShortLabel + " " + FormatHours(day.Totals[st])
	}
	return s
}

package render

import (
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/services"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// statusLevel puts off duty on the top line, matching paper log sheets.
func statusLevel(s domain.DutyStatus) float64 {
	return float64(len(domain.AllDutyStatuses()) - 1 - services.StatusRow(s))
}

// DutyGraph builds the classic four-line duty graph for one day.
// Bars are drawn in status colours; a thin step line joins consecutive segments.
func DutyGraph(day services.DayView, cfg config.RenderConfig) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Duty status"
	if !day.DateStart.IsZero() {
		p.Title.Text += " " + day.DateStart.Format("2006-01-02")
	}
	p.X.Label.Text = "hour"
	p.X.Min = 0
	p.X.Max = domain.HoursPerDay
	p.Y.Min = -0.5
	p.Y.Max = float64(len(domain.AllDutyStatuses())) - 0.5

	xTicks := make([]plot.Tick, 0, domain.HoursPerDay+1)
	for h := 0; h <= domain.HoursPerDay; h++ {
		t := plot.Tick{Value: float64(h)}
		if h%2 == 0 {
			t.Label = fmt.Sprintf("%d", h)
		}
		xTicks = append(xTicks, t)
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)

	yTicks := make([]plot.Tick, 0, len(domain.AllDutyStatuses()))
	for _, s := range domain.AllDutyStatuses() {
		yTicks = append(yTicks, plot.Tick{Value: statusLevel(s), Label: cfg.Style(s).ShortLabel})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	var step plotter.XYs
	inLegend := map[domain.DutyStatus]bool{}
	for _, b := range day.Bars {
		y := statusLevel(b.Status)
		pts := plotter.XYs{
			{X: b.Start.Hours(), Y: y},
			{X: b.End.Hours(), Y: y},
		}
		step = append(step, pts...)

		c, err := hexColor(cfg.Style(b.Status).GraphColor)
		if err != nil {
			return nil, fmt.Errorf("duty graph: %w", err)
		}

		bar, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("duty graph: %w", err)
		}
		bar.Color = c
		bar.Width = vg.Points(6)
		p.Add(bar)

		if !inLegend[b.Status] {
			inLegend[b.Status] = true
			p.Legend.Add(cfg.Style(b.Status).Label, bar)
		}
	}

	if len(step) > 1 {
		joined, err := plotter.NewLine(step)
		if err != nil {
			return nil, fmt.Errorf("duty graph: %w", err)
		}
		joined.Color = color.Gray{Y: 40}
		joined.Width = vg.Points(1)
		p.Add(joined)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	return p, nil
}

// DutyGraphPNG renders DutyGraph as PNG using the configured timeline size in points.
func DutyGraphPNG(w io.Writer, day services.DayView, cfg config.RenderConfig) error {
	p, err := DutyGraph(day, cfg)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Points(cfg.Timeline.Width), vg.Points(cfg.Timeline.Height+60), "png")
	if err != nil {
		return fmt.Errorf("duty graph png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("duty graph png: write: %w", err)
	}
	return nil
}

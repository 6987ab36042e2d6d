package services

import (
	"eld-log-service/internal/domain"
	"math"
)

// Default graph geometry for the daily duty-status timeline.
const (
	DefaultTimelineWidth  = 800.0
	DefaultTimelineHeight = 200.0
	DefaultMinBarWidth    = 2.0

	barInset = 5.0
)

// Output axis for the continuous timeline. Width spans 24 hours.
// MinBarWidth keeps very short segments visible and is a rendering policy,
// not a property of the data.
type TimelineAxis struct {
	Width       float64
	Height      float64
	MinBarWidth float64
}

func DefaultTimelineAxis() TimelineAxis {
	return TimelineAxis{
		Width:       DefaultTimelineWidth,
		Height:      DefaultTimelineHeight,
		MinBarWidth: DefaultMinBarWidth,
	}
}

// RowHeight is the height of one status row; the graph has one row per status.
func (a TimelineAxis) RowHeight() float64 {
	return a.Height / float64(len(domain.AllDutyStatuses()))
}

// TimeToX maps a time of day to a coordinate in [0, width].
func TimeToX(t domain.ClockTime, width float64) float64 {
	return t.Hours() / domain.HoursPerDay * width
}

// BarSpan returns the x offset and visible width of an interval on the axis.
func BarSpan(start, end domain.ClockTime, width, minWidth float64) (x float64, w float64) {
	x = TimeToX(start, width)
	w = math.Max(TimeToX(end, width)-x, minWidth)
	return x, w
}

// StatusRow is the graph row of a status, following the canonical status order.
func StatusRow(s domain.DutyStatus) int {
	for i, st := range domain.AllDutyStatuses() {
		if st == s {
			return i
		}
	}
	return -1
}

// LayoutTimeline places each segment on the continuous timeline.
// Segments keep their full minute precision, unlike the hourly grid.
func LayoutTimeline(segments []domain.DutySegment, axis TimelineAxis) []domain.TimelineBar {
	rowHeight := axis.RowHeight()
	bars := make([]domain.TimelineBar, 0, len(segments))

	for _, seg := range segments {
		row := StatusRow(seg.Status)
		if row < 0 {
			continue
		}

		x, w := BarSpan(seg.Start, seg.End, axis.Width, axis.MinBarWidth)
		bars = append(bars, domain.TimelineBar{
			Status:  seg.Status,
			Row:     row,
			X:       x,
			Y:       float64(row)*rowHeight + barInset,
			Width:   w,
			Height:  math.Max(rowHeight-2*barInset, 0),
			Start:   seg.Start,
			End:     seg.End,
			Remarks: seg.Note,
		})
	}

	return bars
}

// HourTicks returns the x positions of the 25 hour gridlines (0 through 24).
func HourTicks(width float64) []float64 {
	ticks := make([]float64, 0, domain.HoursPerDay+1)
	for h := 0; h <= domain.HoursPerDay; h++ {
		ticks = append(ticks, float64(h)/domain.HoursPerDay*width)
	}
	return ticks
}

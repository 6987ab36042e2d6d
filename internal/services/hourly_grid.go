package services

import (
	"eld-log-service/internal/domain"
	"fmt"
)

// ProjectHourlyGrid discretizes a day's segments into 24 one-hour slots.
//
// Hour h reports the first segment, in list order, that touches [h, h+1).
// Sub-hour precision is lost on purpose: a segment ending at 14:30 marks hour 14,
// and a segment lying entirely within 09:15-09:45 marks all of hour 9.
// Hours no segment touches default to off duty with empty location and remarks.
func ProjectHourlyGrid(segments []domain.DutySegment) domain.HourlyGrid {
	var grid domain.HourlyGrid

	for h := range grid {
		slot := domain.GridSlot{
			Hour:      h,
			HourLabel: HourLabel(h),
			Status:    domain.OffDuty,
		}

		// First match wins when overlapping segments cover the same hour.
		for _, seg := range segments {
			if coversHour(seg, h) {
				slot.Status = seg.Status
				slot.Location = seg.Location
				slot.Remarks = seg.Note
				break
			}
		}

		grid[h] = slot
	}

	return grid
}

// HourLabel formats an hour index as "HH:00".
func HourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func coversHour(seg domain.DutySegment, h int) bool {
	if !seg.Status.Valid() || seg.End <= seg.Start {
		return false
	}

	startHour := seg.Start.Hour()
	endHour := seg.End.Hour()
	if seg.End.Minute() > 0 {
		endHour++
	}

	return startHour <= h && h < endHour
}

package services

import (
	"eld-log-service/internal/domain"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tolerance used when deciding whether totals add up to a full day.
const completeDayEpsilon = 1e-6

// AggregateStatusTotals sums segment durations per duty status.
//
// All four statuses are always present in the result, with 0 for statuses that
// do not appear. No rounding is applied; display rounding belongs to rendering.
func AggregateStatusTotals(segments []domain.DutySegment) domain.StatusTotals {
	statuses := domain.AllDutyStatuses()

	totals := make(domain.StatusTotals, len(statuses))
	for _, s := range statuses {
		totals[s] = 0
	}

	for _, seg := range segments {
		if !seg.Status.Valid() {
			continue
		}
		totals[seg.Status] += seg.DurationHours()
	}

	return totals
}

// CoverageHours is the sum of all totals. A partial day (first or last day of
// a trip) reports less than 24.
func CoverageHours(totals domain.StatusTotals) float64 {
	statuses := domain.AllDutyStatuses()
	values := make([]float64, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, totals[s])
	}
	return floats.Sum(values)
}

// IsCompleteDay reports whether totals account for a full 24 hours.
// Advisory only; incomplete days are valid input.
func IsCompleteDay(totals domain.StatusTotals) bool {
	return math.Abs(CoverageHours(totals)-domain.HoursPerDay) <= completeDayEpsilon
}

package services

import (
	"eld-log-service/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *domain.TripPlan {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	return &domain.TripPlan{
		Trip: domain.TripRequest{
			CurrentLocation:   "Chicago, IL",
			PickupLocation:    "Chicago, IL",
			DropoffLocation:   "Detroit, MI",
			CurrentCycleHours: 12,
		},
		Route: domain.Route{
			Waypoints:          testWaypoints,
			TotalDistanceMiles: 283,
			TotalDurationHours: 4.5,
		},
		DailyLogs: []domain.DailyLog{
			{
				DateStart: day,
				Segments: []domain.DutySegment{
					seg(domain.OffDuty, "00:00", "08:00", "Chicago, IL", ""),
					seg(domain.OnDutyNotDriving, "08:00", "09:00", "Chicago, IL", "Pickup"),
					seg(domain.Driving, "09:00", "13:30", "I-94", ""),
					seg(domain.OnDutyNotDriving, "13:30", "14:30", "Detroit, MI", "Drop-off"),
				},
			},
			{DateStart: day.AddDate(0, 0, 1)},
		},
		LogEntries: []domain.LogEntry{
			entry(domain.OnDutyNotDriving, "Chicago, IL", "Pickup"),
			entry(domain.Driving, "I-94", ""),
			entry(domain.OnDutyNotDriving, "Detroit, MI", "Drop-off"),
		},
	}
}

func TestRenderTrip(t *testing.T) {
	view := RenderTrip(testPlan(), DefaultTimelineAxis(), nil)

	require.Len(t, view.Days, 2)
	first := view.Days[0]
	assert.Equal(t, domain.OnDutyNotDriving, first.Grid[8].Status)
	assert.Equal(t, domain.Driving, first.Grid[13].Status)
	assert.Equal(t, domain.OnDutyNotDriving, first.Grid[14].Status)
	assert.Equal(t, domain.OffDuty, first.Grid[15].Status)
	assert.InDelta(t, 4.5, first.Totals[domain.Driving], 1e-9)
	assert.InDelta(t, 14.5, first.CoverageHours, 1e-9)
	assert.False(t, first.CompleteDay)
	assert.Len(t, first.Bars, 4)

	second := view.Days[1]
	assert.Len(t, second.Totals, 4)
	assert.Empty(t, second.Bars)
	assert.Equal(t, domain.OffDuty, second.Grid[12].Status)

	require.Len(t, view.Stops, 2)
	assert.Equal(t, "Chicago Distribution Center", view.Stops[0].Waypoint.Name)
	assert.Equal(t, "Detroit Hub", view.Stops[1].Waypoint.Name)

	assert.Len(t, view.HourTicks, 25)
	assert.Equal(t, "Detroit, MI", view.Trip.DropoffLocation)
}

func TestRenderTripNilPlan(t *testing.T) {
	view := RenderTrip(nil, DefaultTimelineAxis(), nil)

	assert.NotNil(t, view.Days)
	assert.NotNil(t, view.Stops)
	assert.Empty(t, view.Days)
	assert.Len(t, view.HourTicks, 25)
}

func TestRenderTripIdempotent(t *testing.T) {
	plan := testPlan()
	a := RenderTrip(plan, DefaultTimelineAxis(), FirstTokenMatcher{})
	b := RenderTrip(plan, DefaultTimelineAxis(), FirstTokenMatcher{})

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("views differ between calls (-first +second):\n%s", diff)
	}
}

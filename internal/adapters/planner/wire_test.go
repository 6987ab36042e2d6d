package planner

import (
	"eld-log-service/internal/domain"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *domain.TripPlan {
	t.Helper()

	f, err := os.Open("testdata/trip_plan.json")
	require.NoError(t, err)
	defer f.Close()

	plan, err := DecodeTripPlan(f)
	require.NoError(t, err)
	return plan
}

func TestDecodeTripPlanFixture(t *testing.T) {
	plan := loadFixture(t)

	assert.Equal(t, domain.TripRequest{
		CurrentLocation:   "Chicago, IL",
		PickupLocation:    "Gary, IN",
		DropoffLocation:   "Detroit, MI",
		CurrentCycleHours: 12.5,
	}, plan.Trip)

	require.Len(t, plan.Route.Waypoints, 3)
	assert.Equal(t, domain.Waypoint{
		Name:        "Gary Pickup Yard",
		Coordinates: domain.Coordinates{Lat: 41.5934, Lon: -87.3464},
	}, plan.Route.Waypoints[1])

	// Geometry arrives as [lng, lat].
	require.Len(t, plan.Route.Geometry, 3)
	assert.Equal(t, domain.Coordinates{Lat: 41.8781, Lon: -87.6298}, plan.Route.Geometry[0])
	assert.Equal(t, 283.4, plan.Route.TotalDistanceMiles)

	require.Len(t, plan.DailyLogs, 2)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), plan.DailyLogs[0].DateStart)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), plan.DailyLogs[1].DateStart)

	want := domain.DutySegment{
		Status:   domain.OnDutyNotDriving,
		Start:    domain.MustClock("08:30"),
		End:      domain.MustClock("09:30"),
		Location: "Gary, IN",
		Note:     "Pickup",
	}
	if diff := cmp.Diff(want, plan.DailyLogs[0].Segments[3]); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, plan.LogEntries, 6)
	assert.Equal(t, domain.SleeperBerth, plan.LogEntries[5].Status)
	assert.Equal(t, "Rest", plan.LogEntries[5].Remarks)
}

func TestToDomainFieldPaths(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *TripPlanJSON)
		wantPath string
		wantErr  error
	}{
		{
			name:     "malformed segment start",
			mutate:   func(p *TripPlanJSON) { p.DailyLogs[1].Segments[0].StartTime = "8am" },
			wantPath: "daily_logs[1].segments[0].start_time",
			wantErr:  domain.ErrMalformedTime,
		},
		{
			name:     "malformed segment end",
			mutate:   func(p *TripPlanJSON) { p.DailyLogs[0].Segments[2].EndTime = "25:00" },
			wantPath: "daily_logs[0].segments[2].end_time",
			wantErr:  domain.ErrMalformedTime,
		},
		{
			name:     "unknown segment status",
			mutate:   func(p *TripPlanJSON) { p.DailyLogs[0].Segments[1].Status = "yard_move" },
			wantPath: "daily_logs[0].segments[1].status",
			wantErr:  domain.ErrUnknownStatus,
		},
		{
			name:     "unknown entry status",
			mutate:   func(p *TripPlanJSON) { p.LogEntries[2].DutyStatus = "Driving" },
			wantPath: "log_entries[2].duty_status",
			wantErr:  domain.ErrUnknownStatus,
		},
		{
			name:     "malformed entry end",
			mutate:   func(p *TripPlanJSON) { p.LogEntries[0].EndTime = "" },
			wantPath: "log_entries[0].end_time",
			wantErr:  domain.ErrMalformedTime,
		},
		{
			name:     "malformed date",
			mutate:   func(p *TripPlanJSON) { p.DailyLogs[0].DateStart = "11/03/2024" },
			wantPath: "daily_logs[0].date_start",
			wantErr:  ErrMalformedDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := os.ReadFile("testdata/trip_plan.json")
			require.NoError(t, err)

			var wire TripPlanJSON
			require.NoError(t, json.Unmarshal(b, &wire))
			tt.mutate(&wire)

			_, err = wire.ToDomain()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantPath+":"), "err = %v", err)
		})
	}
}

func TestToDomainRejectsBadCoordinates(t *testing.T) {
	wire := TripPlanJSON{
		Route: RouteJSON{Waypoints: []WaypointJSON{{Name: "A", Coordinates: []FlexFloat{1}}}},
	}
	_, err := wire.ToDomain()
	assert.ErrorContains(t, err, "route.waypoints[0].coordinates")

	wire = TripPlanJSON{
		Route: RouteJSON{Geometry: &GeometryJSON{Coordinates: [][]FlexFloat{{1, 2, 3}}}},
	}
	_, err = wire.ToDomain()
	assert.ErrorContains(t, err, "route.geometry.coordinates[0]")
}

func TestToDomainEmptyPlan(t *testing.T) {
	plan, err := TripPlanJSON{}.ToDomain()
	require.NoError(t, err)

	assert.Empty(t, plan.DailyLogs)
	assert.Empty(t, plan.LogEntries)
	assert.Empty(t, plan.Route.Waypoints)
	assert.Nil(t, plan.Route.Geometry)
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		in      string
		want    FlexFloat
		wantErr bool
	}{
		{in: `12.5`, want: 12.5},
		{in: `"12.5"`, want: 12.5},
		{in: `" 7 "`, want: 7},
		{in: `""`, want: 0},
		{in: `null`, want: 0},
		{in: `"twelve"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		var got FlexFloat
		err := json.Unmarshal([]byte(tt.in), &got)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

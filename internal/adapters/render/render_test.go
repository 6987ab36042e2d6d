package render

import (
	"bytes"
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(status domain.DutyStatus, start, end string) domain.DutySegment {
	return domain.DutySegment{Status: status, Start: domain.MustClock(start), End: domain.MustClock(end)}
}

func testView() services.TripView {
	plan := &domain.TripPlan{
		Trip: domain.TripRequest{CurrentLocation: "Chicago, IL", PickupLocation: "Gary, IN", DropoffLocation: "Detroit, MI"},
		Route: domain.Route{
			Waypoints: []domain.Waypoint{
				{Name: "Gary Pickup Yard", Coordinates: domain.Coordinates{Lat: 41.5934, Lon: -87.3464}},
			},
			TotalDistanceMiles: 283.4,
		},
		DailyLogs: []domain.DailyLog{
			{
				DateStart: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
				Segments: []domain.DutySegment{
					seg(domain.OffDuty, "00:00", "06:00"),
					seg(domain.OnDutyNotDriving, "06:00", "07:00"),
					seg(domain.Driving, "07:00", "17:00"),
					seg(domain.SleeperBerth, "17:00", "24:00"),
				},
			},
			{
				Segments: []domain.DutySegment{seg(domain.Driving, "08:00", "10:00")},
			},
		},
		LogEntries: []domain.LogEntry{
			{Status: domain.OnDutyNotDriving, Start: domain.MustClock("08:30"), End: domain.MustClock("09:30"), Location: "Gary, IN", Remarks: "Pickup"},
		},
	}
	cfg := config.DefaultRenderConfig()
	return services.RenderTrip(plan, Axis(cfg), services.FirstTokenMatcher{})
}

func TestAxisFromConfig(t *testing.T) {
	axis := Axis(config.DefaultRenderConfig())
	assert.Equal(t, services.DefaultTimelineAxis(), axis)
}

func TestStatusCode(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	assert.Equal(t, "OF", statusCode(cfg, domain.OffDuty))
	assert.Equal(t, "SL", statusCode(cfg, domain.SleeperBerth))
	assert.Equal(t, "DR", statusCode(cfg, domain.Driving))
	assert.Equal(t, "ON", statusCode(cfg, domain.OnDutyNotDriving))
}

func TestStatusCodeMultiByteLabels(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	cfg.Statuses[domain.OffDuty.String()] = config.StatusStyle{ShortLabel: "Éteint"}
	cfg.Statuses[domain.SleeperBerth.String()] = config.StatusStyle{ShortLabel: "休息"}
	cfg.Statuses[domain.Driving.String()] = config.StatusStyle{ShortLabel: "D"}

	assert.Equal(t, "ÉT", statusCode(cfg, domain.OffDuty))
	assert.Equal(t, "休息", statusCode(cfg, domain.SleeperBerth))
	assert.Equal(t, "D ", statusCode(cfg, domain.Driving))
}

func TestChartsPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChartsPage(&buf, testView(), config.DefaultRenderConfig()))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Hours per duty status")
	assert.Contains(t, html, "Mon Mar 11")
	assert.Contains(t, html, "Day 2")
	assert.Contains(t, html, "#f87171")
}

func TestDutyGraphPNG(t *testing.T) {
	view := testView()

	var buf bytes.Buffer
	require.NoError(t, DutyGraphPNG(&buf, view.Days[0], config.DefaultRenderConfig()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "not a PNG")
}

func TestDutyGraphEmptyDay(t *testing.T) {
	day := services.RenderDay(domain.DailyLog{}, services.DefaultTimelineAxis())

	var buf bytes.Buffer
	require.NoError(t, DutyGraphPNG(&buf, day, config.DefaultRenderConfig()))
	assert.NotZero(t, buf.Len())
}

func TestDutyGraphBadColor(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	st := cfg.Statuses["driving"]
	st.GraphColor = "red"
	cfg.Statuses["driving"] = st

	_, err := DutyGraph(testView().Days[0], cfg)
	assert.Error(t, err)
}

func TestTerminalTrip(t *testing.T) {
	out := TerminalTrip(testView(), config.DefaultRenderConfig())

	assert.Contains(t, out, "Chicago, IL -> Gary, IN -> Detroit, MI")
	assert.Contains(t, out, "Day 1 2024-03-11")
	assert.Contains(t, out, "00 01 02")
	assert.Contains(t, out, "DR=Driving 10.0h")
	assert.Contains(t, out, "(covers 2.0h of 24h)", "incomplete second day is flagged")
	assert.Contains(t, out, "Gary Pickup Yard")
	assert.Contains(t, out, `"Pickup"`)

	// The first day is complete, so only one coverage note is printed.
	assert.Equal(t, 1, strings.Count(out, "covers"))
}

func TestTerminalStopsEmpty(t *testing.T) {
	out := TerminalStops(nil, config.DefaultRenderConfig())
	assert.Contains(t, out, "none")
}

package config

import (
	"eld-log-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultRenderConfig(t *testing.T) {
	cfg := DefaultRenderConfig()
	require.NoError(t, cfg.Validate())

	for _, s := range domain.AllDutyStatuses() {
		st, ok := cfg.Statuses[s.String()]
		require.True(t, ok, "missing style for %s", s)
		assert.NotEmpty(t, st.Label)
		assert.NotEmpty(t, st.GraphColor)
	}

	assert.Equal(t, "On Duty (Not Driving)", cfg.Style(domain.OnDutyNotDriving).Label)
	assert.Equal(t, "Sleeper", cfg.Style(domain.SleeperBerth).ShortLabel)
	assert.Equal(t, [2]int{16, 16}, cfg.Map.MarkerIconSize)
	assert.Equal(t, [2]int{8, 8}, cfg.Map.MarkerIconAnchor)
	assert.Equal(t, 800.0, cfg.Timeline.Width)
	assert.Equal(t, 2.0, cfg.Timeline.MinBarWidth)
}

func TestLoadRenderConfigEmptyPath(t *testing.T) {
	cfg, err := LoadRenderConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRenderConfig(), cfg)
}

func TestLoadRenderConfigOverridesOnlyGivenFields(t *testing.T) {
	path := writeYAML(t, `
statuses:
  driving:
    graph_color: "#000000"
map:
  zoom: 6
timeline:
  width: 1200
matcher:
  strategy: proximity
  proximity_km: 10
`)

	cfg, err := LoadRenderConfig(path)
	require.NoError(t, err)

	driving := cfg.Style(domain.Driving)
	assert.Equal(t, "#000000", driving.GraphColor)
	assert.Equal(t, "Driving", driving.Label, "unset fields keep defaults")

	assert.Equal(t, 6, cfg.Map.Zoom)
	assert.Equal(t, [2]float64{39.8283, -98.5795}, cfg.Map.Center)
	assert.Equal(t, 1200.0, cfg.Timeline.Width)
	assert.Equal(t, 200.0, cfg.Timeline.Height)
	assert.Equal(t, MatcherProximity, cfg.Matcher.Strategy)
	assert.Equal(t, 10.0, cfg.Matcher.ProximityKm)
}

func TestLoadRenderConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown status":   "statuses:\n  yard_move:\n    label: Yard\n",
		"unknown matcher":  "matcher:\n  strategy: fuzzy\n",
		"negative min bar": "timeline:\n  min_bar_width: -1\n",
		"bad yaml":         "statuses: [",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRenderConfig(writeYAML(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadRenderConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetAndGetFloat(t *testing.T) {
	t.Setenv("ELD_TEST_STR", " value ")
	t.Setenv("ELD_TEST_NUM", "12.5")
	t.Setenv("ELD_TEST_BAD", "abc")

	assert.Equal(t, "value", Get("ELD_TEST_STR", "x"))
	assert.Equal(t, "x", Get("ELD_TEST_UNSET", "x"))
	assert.Equal(t, 12.5, GetFloat("ELD_TEST_NUM", 1))
	assert.Equal(t, 1.0, GetFloat("ELD_TEST_BAD", 1))
	assert.Equal(t, 3.0, GetFloat("ELD_TEST_UNSET", 3))
}

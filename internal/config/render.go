package config

import (
	"eld-log-service/internal/domain"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MatcherFirstToken = "first-token"
	MatcherProximity  = "proximity"
)

// StatusStyle is how one duty status is labelled and coloured.
type StatusStyle struct {
	Label       string `yaml:"label" json:"label"`             // long label, e.g. "On Duty (Not Driving)"
	ShortLabel  string `yaml:"short_label" json:"short_label"` // graph row label
	GraphColor  string `yaml:"graph_color" json:"graph_color"` // hex, timeline bars and charts
	GridColor   string `yaml:"grid_color" json:"grid_color"`   // hex, hourly grid cells
	MarkerColor string `yaml:"marker_color" json:"marker_color"`
}

type MapConfig struct {
	TileURL            string     `yaml:"tile_url" json:"tile_url"`
	Attribution        string     `yaml:"attribution" json:"attribution"`
	Center             [2]float64 `yaml:"center" json:"center"` // [lat, lng]
	Zoom               int        `yaml:"zoom" json:"zoom"`
	MarkerIconSize     [2]int     `yaml:"marker_icon_size" json:"marker_icon_size"`
	MarkerIconAnchor   [2]int     `yaml:"marker_icon_anchor" json:"marker_icon_anchor"`
	WaypointIconSize   [2]int     `yaml:"waypoint_icon_size" json:"waypoint_icon_size"`
	WaypointIconAnchor [2]int     `yaml:"waypoint_icon_anchor" json:"waypoint_icon_anchor"`
	RouteColor         string     `yaml:"route_color" json:"route_color"`
	RouteWeight        int        `yaml:"route_weight" json:"route_weight"`
	RouteOpacity       float64    `yaml:"route_opacity" json:"route_opacity"`
}

type TimelineConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinBarWidth float64 `yaml:"min_bar_width"`
}

type MatcherConfig struct {
	Strategy    string  `yaml:"strategy"`
	ProximityKm float64 `yaml:"proximity_km"`
}

// RenderConfig holds every presentation policy passed to the rendering boundary.
// Statuses are keyed by wire name (off_duty, sleeper_berth, ...).
type RenderConfig struct {
	Statuses map[string]StatusStyle `yaml:"statuses"`
	Map      MapConfig              `yaml:"map"`
	Timeline TimelineConfig         `yaml:"timeline"`
	Matcher  MatcherConfig          `yaml:"matcher"`
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Statuses: defaultStatusStyles(),
		Map: MapConfig{
			TileURL:            "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution:        `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
			Center:             [2]float64{39.8283, -98.5795},
			Zoom:               4,
			MarkerIconSize:     [2]int{16, 16},
			MarkerIconAnchor:   [2]int{8, 8},
			WaypointIconSize:   [2]int{25, 41},
			WaypointIconAnchor: [2]int{12, 41},
			RouteColor:         "blue",
			RouteWeight:        4,
			RouteOpacity:       0.7,
		},
		Timeline: TimelineConfig{
			Width:       800,
			Height:      200,
			MinBarWidth: 2,
		},
		Matcher: MatcherConfig{
			Strategy:    MatcherFirstToken,
			ProximityKm: 25,
		},
	}
}

func defaultStatusStyles() map[string]StatusStyle {
	return map[string]StatusStyle{
		domain.OffDuty.String(): {
			Label: "Off Duty", ShortLabel: "Off Duty",
			GraphColor: "#60a5fa", GridColor: "#e5e7eb", MarkerColor: "gray",
		},
		domain.SleeperBerth.String(): {
			Label: "Sleeper Berth", ShortLabel: "Sleeper",
			GraphColor: "#a78bfa", GridColor: "#e9d5ff", MarkerColor: "purple",
		},
		domain.Driving.String(): {
			Label: "Driving", ShortLabel: "Driving",
			GraphColor: "#f87171", GridColor: "#bfdbfe", MarkerColor: "blue",
		},
		domain.OnDutyNotDriving.String(): {
			Label: "On Duty (Not Driving)", ShortLabel: "On Duty",
			GraphColor: "#fbbf24", GridColor: "#fed7aa", MarkerColor: "orange",
		},
	}
}

// Style returns the style for s. Unknown statuses get a neutral style
// labelled with the status name.
func (c RenderConfig) Style(s domain.DutyStatus) StatusStyle {
	if st, ok := c.Statuses[s.String()]; ok {
		return st
	}
	return StatusStyle{Label: s.String(), ShortLabel: s.String(), GraphColor: "#9ca3af", GridColor: "#e5e7eb", MarkerColor: "gray"}
}

// LoadRenderConfig reads a YAML file over the defaults. An empty path returns
// the defaults. Fields missing from the file keep their default values.
func LoadRenderConfig(path string) (RenderConfig, error) {
	cfg := DefaultRenderConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("load render config: read %s: %w", path, err)
	}

	var file RenderConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RenderConfig{}, fmt.Errorf("load render config: parse %s: %w", path, err)
	}

	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, fmt.Errorf("load render config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *RenderConfig) merge(o RenderConfig) {
	for name, st := range o.Statuses {
		base := c.Statuses[name]
		base.Label = pick(st.Label, base.Label)
		base.ShortLabel = pick(st.ShortLabel, base.ShortLabel)
		base.GraphColor = pick(st.GraphColor, base.GraphColor)
		base.GridColor = pick(st.GridColor, base.GridColor)
		base.MarkerColor = pick(st.MarkerColor, base.MarkerColor)
		c.Statuses[name] = base
	}

	m := o.Map
	c.Map.TileURL = pick(m.TileURL, c.Map.TileURL)
	c.Map.Attribution = pick(m.Attribution, c.Map.Attribution)
	c.Map.RouteColor = pick(m.RouteColor, c.Map.RouteColor)
	if m.Center != [2]float64{} {
		c.Map.Center = m.Center
	}
	if m.Zoom != 0 {
		c.Map.Zoom = m.Zoom
	}
	if m.MarkerIconSize != [2]int{} {
		c.Map.MarkerIconSize = m.MarkerIconSize
	}
	if m.MarkerIconAnchor != [2]int{} {
		c.Map.MarkerIconAnchor = m.MarkerIconAnchor
	}
	if m.WaypointIconSize != [2]int{} {
		c.Map.WaypointIconSize = m.WaypointIconSize
	}
	if m.WaypointIconAnchor != [2]int{} {
		c.Map.WaypointIconAnchor = m.WaypointIconAnchor
	}
	if m.RouteWeight != 0 {
		c.Map.RouteWeight = m.RouteWeight
	}
	if m.RouteOpacity != 0 {
		c.Map.RouteOpacity = m.RouteOpacity
	}

	if o.Timeline.Width != 0 {
		c.Timeline.Width = o.Timeline.Width
	}
	if o.Timeline.Height != 0 {
		c.Timeline.Height = o.Timeline.Height
	}
	if o.Timeline.MinBarWidth != 0 {
		c.Timeline.MinBarWidth = o.Timeline.MinBarWidth
	}

	c.Matcher.Strategy = pick(o.Matcher.Strategy, c.Matcher.Strategy)
	if o.Matcher.ProximityKm != 0 {
		c.Matcher.ProximityKm = o.Matcher.ProximityKm
	}
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// Validate rejects configurations the renderer cannot use.
func (c RenderConfig) Validate() error {
	for name := range c.Statuses {
		if _, err := domain.ParseDutyStatus(name); err != nil {
			return fmt.Errorf("statuses: %w", err)
		}
	}

	if c.Timeline.Width <= 0 || c.Timeline.Height <= 0 {
		return errors.New("timeline: width and height must be positive")
	}
	if c.Timeline.MinBarWidth < 0 {
		return errors.New("timeline: min_bar_width must not be negative")
	}

	switch c.Matcher.Strategy {
	case MatcherFirstToken, MatcherProximity:
	default:
		return fmt.Errorf("matcher: unknown strategy %q", c.Matcher.Strategy)
	}

	return nil
}

package render

import (
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/services"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Axis converts the configured timeline geometry to the engine's axis.
func Axis(cfg config.RenderConfig) services.TimelineAxis {
	return services.TimelineAxis{
		Width:       cfg.Timeline.Width,
		Height:      cfg.Timeline.Height,
		MinBarWidth: cfg.Timeline.MinBarWidth,
	}
}

// statusCode is the two-letter cell code used by the terminal grid.
func statusCode(cfg config.RenderConfig, s domain.DutyStatus) string {
	label := []rune(strings.ToUpper(strings.ReplaceAll(cfg.Style(s).ShortLabel, " ", "")))
	for len(label) < 2 {
		label = append(label, ' ')
	}
	return string(label[:2])
}

func hexColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}

// FormatHours formats an hour total the way log sheets show them.
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

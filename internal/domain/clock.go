package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedTime = errors.New("malformed time of day")

// Wall-clock time of day with minute resolution, stored as minutes since midnight.
// Valid values are 00:00 through 23:59; 24:00 is accepted as an end-of-day boundary.
type ClockTime int

// ParseClockTime parses a 24-hour "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrMalformedTime)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrMalformedTime)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrMalformedTime)
	}

	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrMalformedTime)
	}

	return ClockTime(h*60 + m), nil
}

// MustClock is ParseClockTime for literals known to be valid.
func MustClock(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// Hours returns the fractional hours since midnight (hours + minutes/60).
func (c ClockTime) Hours() float64 {
	return float64(c.Hour()) + float64(c.Minute())/60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(b []byte) error {
	parsed, err := ParseClockTime(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

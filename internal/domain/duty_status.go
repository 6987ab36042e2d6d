package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStatus = errors.New("unknown duty status")

// DutyStatus is one of the four regulatory states a driver can be in.
// The set is closed; switches over it are expected to be exhaustive.
type DutyStatus int

const (
	OffDuty DutyStatus = iota
	SleeperBerth
	Driving
	OnDutyNotDriving
)

// Canonical order used for totals, graph rows and legends.
func AllDutyStatuses() []DutyStatus {
	return []DutyStatus{OffDuty, SleeperBerth, Driving, OnDutyNotDriving}
}

// Wire name as exchanged with the trip planner.
func (s DutyStatus) String() string {
	switch s {
	case OffDuty:
		return "off_duty"
	case SleeperBerth:
		return "sleeper_berth"
	case Driving:
		return "driving"
	case OnDutyNotDriving:
		return "on_duty_not_driving"
	}
	return fmt.Sprintf("DutyStatus(%d)", int(s))
}

func (s DutyStatus) Valid() bool {
	return s >= OffDuty && s <= OnDutyNotDriving
}

// ParseDutyStatus maps a wire name to its DutyStatus.
func ParseDutyStatus(name string) (DutyStatus, error) {
	switch strings.TrimSpace(name) {
	case "off_duty":
		return OffDuty, nil
	case "sleeper_berth":
		return SleeperBerth, nil
	case "driving":
		return Driving, nil
	case "on_duty_not_driving":
		return OnDutyNotDriving, nil
	}
	return OffDuty, fmt.Errorf("parse duty status %q: %w", name, ErrUnknownStatus)
}

func (s DutyStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal duty status %d: %w", int(s), ErrUnknownStatus)
	}
	return []byte(s.String()), nil
}

func (s *DutyStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseDutyStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/toggley/internal/domain/validation"
)

// Storage keys of the local (device-only) scope.
const (
	KeyThemeSchedule   = "themeSchedule"
	KeyScheduleEnabled = "scheduleEnabled"
)

// Default schedule boundaries.
const (
	DefaultLightTime = "06:00"
	DefaultDarkTime  = "18:00"
)

var (
	// ErrScheduleIncomplete is returned when either boundary is empty.
	ErrScheduleIncomplete = errors.New("both light and dark times are required")
	// ErrScheduleSameTime is returned when both boundaries are equal.
	ErrScheduleSameTime = errors.New("light and dark times must differ")
)

// Schedule holds the two daily switch boundaries as "HH:MM" strings.
type Schedule struct {
	Light string `json:"light" yaml:"light" toml:"light"`
	Dark  string `json:"dark" yaml:"dark" toml:"dark"`
}

// DefaultSchedule returns the 06:00 / 18:00 schedule.
func DefaultSchedule() Schedule {
	return Schedule{Light: DefaultLightTime, Dark: DefaultDarkTime}
}

// Bounds parses both boundaries into minutes since midnight.
func (s Schedule) Bounds() (light, dark int, err error) {
	if s.Light == "" || s.Dark == "" {
		return 0, 0, ErrScheduleIncomplete
	}
	light, err = validation.ParseClock(s.Light)
	if err != nil {
		return 0, 0, fmt.Errorf("light time: %w", err)
	}
	dark, err = validation.ParseClock(s.Dark)
	if err != nil {
		return 0, 0, fmt.Errorf("dark time: %w", err)
	}
	return light, dark, nil
}

// Validate checks that both boundaries are set, parse, and differ.
func (s Schedule) Validate() error {
	light, dark, err := s.Bounds()
	if err != nil {
		return err
	}
	if light == dark {
		return ErrScheduleSameTime
	}
	return nil
}

// ModeAt resolves the mode for a time of day given in minutes since midnight.
func (s Schedule) ModeAt(minutes int) (Mode, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	light, dark, _ := s.Bounds()
	return ModeForWindow(light, dark, minutes), nil
}

// ModeAtTime resolves the mode for the local wall-clock time of t.
func (s Schedule) ModeAtTime(t time.Time) (Mode, error) {
	return s.ModeAt(MinutesOfDay(t))
}

// MinutesOfDay returns the minutes since local midnight of t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ModeForWindow is the pure resolution rule. Light covers the half-open
// window [light, dark) and wraps across midnight when light > dark.
func ModeForWindow(light, dark, now int) Mode {
	var isLight bool
	if light < dark {
		isLight = now >= light && now < dark
	} else {
		isLight = now >= light || now < dark
	}
	if isLight {
		return ModeLight
	}
	return ModeDark
}

// ToMap flattens s into its storage value.
func (s Schedule) ToMap() map[string]any {
	return map[string]any{"light": s.Light, "dark": s.Dark}
}

// ScheduleFromValue decodes the stored schedule value, falling back to the defaults.
func ScheduleFromValue(v any) Schedule {
	s := DefaultSchedule()
	m, ok := v.(map[string]any)
	if !ok {
		return s
	}
	s.Light = stringOr(m["light"], s.Light)
	s.Dark = stringOr(m["dark"], s.Dark)
	return s
}

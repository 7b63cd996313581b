package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidClock is returned for strings that are not a 24h HH:MM time.
var ErrInvalidClock = errors.New("invalid clock time")

const (
	hoursPerDay    = 24
	minutesPerHour = 60
)

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour >= hoursPerDay {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidClock, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute >= minutesPerHour {
		return 0, fmt.Errorf("%w: minute out of range in %q", ErrInvalidClock, value)
	}

	return hour*minutesPerHour + minute, nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	minutes = ((minutes % (hoursPerDay * minutesPerHour)) + hoursPerDay*minutesPerHour) % (hoursPerDay * minutesPerHour)
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

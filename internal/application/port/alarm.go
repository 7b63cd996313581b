package port

//go:generate mockgen -source=alarm.go -destination=gomock/mock_alarm.go -package=mock_port

import "time"

// AlarmScheduler manages named periodic triggers. A fire is delivered to
// the event loop, never run on the timer goroutine.
type AlarmScheduler interface {
	// Create arms name to fire every period, replacing any alarm with the same name.
	Create(name string, period time.Duration) error

	// Clear cancels name and reports whether it existed.
	Clear(name string) bool
}

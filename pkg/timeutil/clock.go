package timeutil

import (
	"sync"
	"time"
)

const (
	// LayoutDay is the calendar-date encoding used for every stored date.
	LayoutDay = "2006-01-02"
	// LayoutDisplay renders a stored date for people, e.g. "Jan 19, 2026".
	LayoutDisplay = "Jan 2, 2006"
)

// Clock supplies the current time. Production code uses System; tests use
// FixedClock to move across day boundaries.
type Clock interface {
	Now() time.Time
}

// System is the wall clock in the local time zone.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Today returns the local calendar date of c as YYYY-MM-DD.
func Today(c Clock) string {
	if c == nil {
		c = System
	}
	return c.Now().Local().Format(LayoutDay)
}

// FormatDisplay turns a YYYY-MM-DD date into "Jan 19, 2026". Values that do
// not parse are returned unchanged.
func FormatDisplay(day string) string {
	t, err := time.ParseInLocation(LayoutDay, day, time.Local)
	if err != nil {
		return day
	}
	return t.Format(LayoutDisplay)
}

// ParseDay parses a YYYY-MM-DD date in the local time zone.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(LayoutDay, day, time.Local)
}

// FixedClock is a settable Clock.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock returns a FixedClock reading now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now implements Clock.
func (f *FixedClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set moves the clock to t.
func (f *FixedClock) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

// AddDays advances the clock by n calendar days.
func (f *FixedClock) AddDays(n int) {
	f.mu.Lock()
	f.now = f.now.AddDate(0, 0, n)
	f.mu.Unlock()
}

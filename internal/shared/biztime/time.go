// Package biztime holds the business timezone. Timestamps are stored in UTC;
// the business timezone only decides which calendar month "now" belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "Europe/Istanbul"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
	nowFunc     = time.Now
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		// tzdata missing from the image
		return time.UTC
	}
	return Location()
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return clock()().UTC()
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return clock()().In(Location())
}

func clock() func() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return nowFunc
}

// CurrentPeriod returns the calendar month and year of now in the business
// timezone.
func CurrentPeriod() (month int, year int) {
	n := Now()
	return int(n.Month()), n.Year()
}

// DueDate returns day of the given month in the business timezone, clamped to
// the month's last day, converted to UTC.
func DueDate(year, month, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, Location()).UTC()
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SetNowFunc overrides the clock. Tests only; returns a restore func.
func SetNowFunc(fn func() time.Time) func() {
	mu.Lock()
	prev := nowFunc
	nowFunc = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		nowFunc = prev
		mu.Unlock()
	}
}

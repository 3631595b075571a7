package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Default clock times applied when a booking carries none. Both layout modes
// read these constants so the defaults cannot drift between them.
const (
	DefaultCheckInTime  = "12:00"
	DefaultCheckOutTime = "14:00"

	minutesPerDay = 24 * 60
)

// dayFraction converts an "HH:MM" clock time to a fraction of a day in
// [0, 1). Empty or malformed input falls back to def.
func dayFraction(clock, def string) float64 {
	if clock == "" {
		clock = def
	}
	h, m, ok := splitClock(clock)
	if !ok {
		h, m, _ = splitClock(def)
	}
	return float64(h*60+m) / minutesPerDay
}

func splitClock(clock string) (h, m int, ok bool) {
	hh, mm, found := strings.Cut(clock, ":")
	if !found {
		return 0, 0, false
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// dateOnly truncates t to midnight UTC so date comparisons ignore whatever
// clock or zone the ingestion layer left on it.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

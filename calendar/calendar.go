// Package calendar computes the layout geometry for the booking calendar
// screens: month grid dimensions, per-property grouping, day occupancy and
// timeline bar positions. Everything here is a pure function of its inputs;
// callers pass the booking list and viewed month explicitly and may invoke
// the package concurrently.
package calendar

import "time"

// Booking is the view-layer record the engine lays out. Dates carry the
// check-in and check-out day; clock times are "HH:MM" strings and may be
// empty, in which case DefaultCheckInTime/DefaultCheckOutTime apply.
type Booking struct {
	ID             string    `json:"bookId"`
	PropertyID     string    `json:"propId"`
	GuestFirstName string    `json:"firstName"`
	GuestLastName  string    `json:"lastName"`
	DateFrom       time.Time `json:"dateFrom"`
	DateTo         time.Time `json:"dateTo"`
	CheckInTime    string    `json:"checkInTime,omitempty"`
	CheckOutTime   string    `json:"checkOutTime,omitempty"`
	Status         Status    `json:"status"`
	ChannelName    string    `json:"channelName"`
	TotalAmount    float64   `json:"totalAmount"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
}

// MonthContext is the coordinate system for one viewed month. It is derived
// on every layout pass and never stored.
type MonthContext struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	DaysInMonth  int        `json:"daysInMonth"`
	FirstWeekday int        `json:"firstWeekday"` // weekday of day 1, 0=Sunday
	WeekRows     int        `json:"weekRows"`
}

// BuildMonthContext computes the grid dimensions for year/month.
// month must be a valid time.Month; anything else is a caller bug.
func BuildMonthContext(year int, month time.Month) MonthContext {
	// day 0 of the next month is the last day of this one
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	first := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	return MonthContext{
		Year:         year,
		Month:        month,
		DaysInMonth:  days,
		FirstWeekday: first,
		WeekRows:     (days + first + 6) / 7,
	}
}

// Groups is a stable partition of bookings by property. PropertyIDs holds
// the keys in first-seen order so iteration stays deterministic across
// renders; ByProperty preserves input order within each group.
type Groups struct {
	PropertyIDs []string
	ByProperty  map[string][]Booking
}

// GroupByProperty partitions bookings by property ID in a single pass.
// Duplicates are kept as-is; an empty input yields an empty partition.
func GroupByProperty(bookings []Booking) Groups {
	g := Groups{ByProperty: make(map[string][]Booking, len(bookings))}
	for _, b := range bookings {
		if _, seen := g.ByProperty[b.PropertyID]; !seen {
			g.PropertyIDs = append(g.PropertyIDs, b.PropertyID)
		}
		g.ByProperty[b.PropertyID] = append(g.ByProperty[b.PropertyID], b)
	}
	return g
}

// MonthCursor is the viewed-month state held by the caller between renders.
type MonthCursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Prev moves the cursor one month back, wrapping the year at January.
func (c MonthCursor) Prev() MonthCursor {
	if c.Month == time.January {
		return MonthCursor{Year: c.Year - 1, Month: time.December}
	}
	return MonthCursor{Year: c.Year, Month: c.Month - 1}
}

// Next moves the cursor one month forward, wrapping the year at December.
func (c MonthCursor) Next() MonthCursor {
	if c.Month == time.December {
		return MonthCursor{Year: c.Year + 1, Month: time.January}
	}
	return MonthCursor{Year: c.Year, Month: c.Month + 1}
}

// Today resets the cursor to now's month.
func Today(now time.Time) MonthCursor {
	return MonthCursor{Year: now.Year(), Month: now.Month()}
}

package calendar

import "time"

// BookingsOnDay returns, in input order, the bookings from group that occupy
// the given day of year/month. Occupancy is half-open: a booking covers the
// days in [DateFrom, DateTo), so the check-out day itself is free and the
// unit can be re-let that night. Comparison uses absolute dates, so bookings
// that start or end in an adjacent month are handled without clipping.
func BookingsOnDay(group []Booking, year int, month time.Month, day int) []Booking {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	var out []Booking
	for _, b := range group {
		if occupies(b, date) {
			out = append(out, b)
		}
	}
	return out
}

func occupies(b Booking, date time.Time) bool {
	from := dateOnly(b.DateFrom)
	to := dateOnly(b.DateTo)
	return !date.Before(from) && date.Before(to)
}

// NightsInMonth counts the nights of b spent inside the viewed month: the
// days of [DateFrom, DateTo) that fall within it. Inverted ranges and stays
// entirely outside the month count zero.
func NightsInMonth(b Booking, mc MonthContext) int {
	monthStart := time.Date(mc.Year, mc.Month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	from := dateOnly(b.DateFrom)
	to := dateOnly(b.DateTo)
	if from.Before(monthStart) {
		from = monthStart
	}
	if to.After(nextMonth) {
		to = nextMonth
	}
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// DayMembership maps property ID → day of month → bookings covering that day,
// the shape the grid view renders cell by cell.
type DayMembership map[string]map[int][]Booking

// BuildDayMembership resolves occupancy for every property and day of the
// viewed month. Days with no bookings are absent from the inner map.
func BuildDayMembership(groups Groups, mc MonthContext) DayMembership {
	out := make(DayMembership, len(groups.PropertyIDs))
	for _, propID := range groups.PropertyIDs {
		days := make(map[int][]Booking)
		for day := 1; day <= mc.DaysInMonth; day++ {
			if hits := BookingsOnDay(groups.ByProperty[propID], mc.Year, mc.Month, day); len(hits) > 0 {
				days[day] = hits
			}
		}
		out[propID] = days
	}
	return out
}

package calendar

import "time"

// BarGeometry positions one booking on the horizontal timeline as
// percentages of the viewed month's full width. The renderer suppresses
// bars whose WidthPercent is not positive.
type BarGeometry struct {
	BookingID    string  `json:"bookId"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// ComputeBarGeometry lays out a single booking within the viewed month.
//
// The span is clipped to the month: an off-screen check-in pins the bar flush
// to the left edge and an off-screen check-out pins it flush to the right, so
// a booking straddling a month boundary continues seamlessly across
// navigation. Clock-time offsets apply only at true boundaries inside the
// month: check-in pushes the left edge right by the time-of-day fraction,
// check-out pulls the right edge left by the remainder of its day.
func ComputeBarGeometry(b Booking, mc MonthContext) BarGeometry {
	geo := BarGeometry{BookingID: b.ID}

	from := dateOnly(b.DateFrom)
	to := dateOnly(b.DateTo)
	if !to.After(from) {
		// inverted or zero-night range: zero-width bar, renderer drops it
		return geo
	}

	monthStart := time.Date(mc.Year, mc.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 0, mc.DaysInMonth-1)
	if to.Before(monthStart) || from.After(monthEnd) {
		return geo
	}

	startDay := 1
	startFrac := 0.0
	if !from.Before(monthStart) {
		startDay = from.Day()
		startFrac = dayFraction(b.CheckInTime, DefaultCheckInTime)
	}

	endDay := mc.DaysInMonth
	endFrac := 0.0
	if !to.After(monthEnd) {
		endDay = to.Day()
		endFrac = 1 - dayFraction(b.CheckOutTime, DefaultCheckOutTime)
	}

	span := float64(mc.DaysInMonth)
	geo.LeftPercent = (float64(startDay-1) + startFrac) / span * 100
	geo.WidthPercent = (float64(endDay-startDay+1) - startFrac - endFrac) / span * 100
	return geo
}

// TimelineRow is one property's lane on the Gantt view.
type TimelineRow struct {
	PropertyID string        `json:"propId"`
	Bars       []BarGeometry `json:"bars"`
}

// BuildTimeline computes bar geometry for every booking, one row per
// property in group order. Bars are emitted regardless of width; filtering
// non-positive widths is the renderer's call.
func BuildTimeline(groups Groups, mc MonthContext) []TimelineRow {
	rows := make([]TimelineRow, 0, len(groups.PropertyIDs))
	for _, propID := range groups.PropertyIDs {
		group := groups.ByProperty[propID]
		bars := make([]BarGeometry, 0, len(group))
		for _, b := range group {
			bars = append(bars, ComputeBarGeometry(b, mc))
		}
		rows = append(rows, TimelineRow{PropertyID: propID, Bars: bars})
	}
	return rows
}

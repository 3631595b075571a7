package calendar

import (
	"math"
	"testing"
	"time"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestBarGeometryClippedStart(t *testing.T) {
	// straddles the Nov/Dec boundary: the true check-in is off-screen, so the
	// bar starts flush left with no clock-time offset
	b := Booking{
		ID:           "B1",
		DateFrom:     day(2023, time.November, 25),
		DateTo:       day(2023, time.December, 5),
		CheckInTime:  "15:00",
		CheckOutTime: "14:00",
	}
	mc := BuildMonthContext(2023, time.December)
	geo := ComputeBarGeometry(b, mc)

	approx(t, "leftPercent", geo.LeftPercent, 0)
	endFrac := 1 - 14.0/24
	approx(t, "widthPercent", geo.WidthPercent, (5-endFrac)/31*100)
}

func TestBarGeometryClippedEnd(t *testing.T) {
	// check-out is in January: bar runs flush to the right edge
	b := Booking{
		ID:          "B2",
		DateFrom:    day(2023, time.December, 28),
		DateTo:      day(2024, time.January, 4),
		CheckInTime: "12:00",
	}
	mc := BuildMonthContext(2023, time.December)
	geo := ComputeBarGeometry(b, mc)

	approx(t, "leftPercent", geo.LeftPercent, (27+0.5)/31*100)
	approx(t, "widthPercent", geo.WidthPercent, (4-0.5)/31*100)
	approx(t, "right edge", geo.LeftPercent+geo.WidthPercent, 100)
}

func TestBarGeometryClockFractions(t *testing.T) {
	// one-night stay fully inside the month: both edges carry time offsets
	b := Booking{
		ID:           "B3",
		DateFrom:     day(2023, time.December, 10),
		DateTo:       day(2023, time.December, 11),
		CheckInTime:  "18:00",
		CheckOutTime: "14:00",
	}
	mc := BuildMonthContext(2023, time.December)
	geo := ComputeBarGeometry(b, mc)

	approx(t, "leftPercent", geo.LeftPercent, (9+0.75)/31*100)
	approx(t, "widthPercent", geo.WidthPercent, (2-0.75-(1-14.0/24))/31*100)
}

func TestBarGeometryDefaultTimes(t *testing.T) {
	// empty clock times fall back to 12:00 check-in, 14:00 check-out
	b := Booking{
		ID:       "B4",
		DateFrom: day(2023, time.December, 10),
		DateTo:   day(2023, time.December, 12),
	}
	mc := BuildMonthContext(2023, time.December)
	geo := ComputeBarGeometry(b, mc)

	approx(t, "leftPercent", geo.LeftPercent, (9+0.5)/31*100)
	approx(t, "widthPercent", geo.WidthPercent, (3-0.5-(1-14.0/24))/31*100)

	// malformed clock strings degrade to the same defaults
	b.CheckInTime, b.CheckOutTime = "noon", "25:99"
	again := ComputeBarGeometry(b, mc)
	approx(t, "malformed leftPercent", again.LeftPercent, geo.LeftPercent)
	approx(t, "malformed widthPercent", again.WidthPercent, geo.WidthPercent)
}

// A stay whose check-out day is the 1st occupies no grid cell, but the
// timeline still shows the guest leaving that morning: a sliver bar from the
// left edge to the check-out time.
func TestBarGeometryCheckoutMorningSliver(t *testing.T) {
	b := Booking{
		ID:           "B6",
		DateFrom:     day(2023, time.November, 28),
		DateTo:       day(2023, time.December, 1),
		CheckOutTime: "14:00",
	}
	mc := BuildMonthContext(2023, time.December)
	geo := ComputeBarGeometry(b, mc)

	approx(t, "leftPercent", geo.LeftPercent, 0)
	approx(t, "widthPercent", geo.WidthPercent, (14.0/24)/31*100)

	if got := BookingsOnDay([]Booking{b}, 2023, time.December, 1); len(got) != 0 {
		t.Errorf("check-out day should not appear in day membership, got %v", got)
	}
}

func TestBarGeometryDegenerate(t *testing.T) {
	mc := BuildMonthContext(2023, time.December)

	zeroNight := Booking{ID: "Z", DateFrom: day(2023, time.December, 10), DateTo: day(2023, time.December, 10)}
	if geo := ComputeBarGeometry(zeroNight, mc); geo.WidthPercent > 0 {
		t.Errorf("zero-night width = %v, want <= 0", geo.WidthPercent)
	}

	inverted := Booking{ID: "I", DateFrom: day(2023, time.December, 15), DateTo: day(2023, time.December, 10)}
	if geo := ComputeBarGeometry(inverted, mc); geo.WidthPercent > 0 {
		t.Errorf("inverted width = %v, want <= 0", geo.WidthPercent)
	}

	outside := Booking{ID: "O", DateFrom: day(2024, time.March, 1), DateTo: day(2024, time.March, 5)}
	if geo := ComputeBarGeometry(outside, mc); geo.WidthPercent > 0 {
		t.Errorf("out-of-view width = %v, want <= 0", geo.WidthPercent)
	}
}

func TestBarGeometryIdempotent(t *testing.T) {
	b := Booking{
		ID:           "B5",
		DateFrom:     day(2023, time.December, 3),
		DateTo:       day(2023, time.December, 9),
		CheckInTime:  "16:30",
		CheckOutTime: "10:00",
	}
	mc := BuildMonthContext(2023, time.December)
	if a, c := ComputeBarGeometry(b, mc), ComputeBarGeometry(b, mc); a != c {
		t.Fatalf("repeated calls diverged: %+v vs %+v", a, c)
	}
}

func TestBuildTimelineRowOrder(t *testing.T) {
	bookings := []Booking{
		{ID: "B1", PropertyID: "1002", DateFrom: day(2023, time.December, 1), DateTo: day(2023, time.December, 3)},
		{ID: "B2", PropertyID: "1001", DateFrom: day(2023, time.December, 5), DateTo: day(2023, time.December, 8)},
		{ID: "B3", PropertyID: "1002", DateFrom: day(2023, time.December, 10), DateTo: day(2023, time.December, 12)},
	}
	mc := BuildMonthContext(2023, time.December)
	rows := BuildTimeline(GroupByProperty(bookings), mc)

	if len(rows) != 2 || rows[0].PropertyID != "1002" || rows[1].PropertyID != "1001" {
		t.Fatalf("row order = %+v", rows)
	}
	if len(rows[0].Bars) != 2 || rows[0].Bars[0].BookingID != "B1" || rows[0].Bars[1].BookingID != "B3" {
		t.Fatalf("bar order within row = %+v", rows[0].Bars)
	}
}

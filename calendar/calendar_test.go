package calendar

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthContext(t *testing.T) {
	tests := []struct {
		year       int
		month      time.Month
		days       int
		firstWday  int
		weekRows   int
	}{
		{2024, time.February, 29, 4, 5}, // leap year, Feb 1 2024 is a Thursday
		{2023, time.February, 28, 3, 5},
		{2023, time.December, 31, 5, 6},
		{2015, time.February, 28, 0, 4}, // Feb 2015 tiles exactly into 4 weeks
		{2023, time.November, 30, 3, 5},
		{2000, time.February, 29, 2, 5}, // divisible-by-400 leap year
		{1900, time.February, 28, 4, 5}, // century non-leap year
	}
	for _, tc := range tests {
		mc := BuildMonthContext(tc.year, tc.month)
		if mc.DaysInMonth != tc.days {
			t.Errorf("%d-%s: daysInMonth = %d, want %d", tc.year, tc.month, mc.DaysInMonth, tc.days)
		}
		if mc.FirstWeekday != tc.firstWday {
			t.Errorf("%d-%s: firstWeekday = %d, want %d", tc.year, tc.month, mc.FirstWeekday, tc.firstWday)
		}
		if mc.WeekRows != tc.weekRows {
			t.Errorf("%d-%s: weekRows = %d, want %d", tc.year, tc.month, mc.WeekRows, tc.weekRows)
		}
	}
}

func TestGroupByPropertyStablePartition(t *testing.T) {
	in := []Booking{
		{ID: "B1", PropertyID: "1001"},
		{ID: "B2", PropertyID: "1002"},
		{ID: "B3", PropertyID: "1001"},
		{ID: "B4", PropertyID: "1003"},
		{ID: "B5", PropertyID: "1002"},
	}
	g := GroupByProperty(in)

	wantOrder := []string{"1001", "1002", "1003"}
	if !reflect.DeepEqual(g.PropertyIDs, wantOrder) {
		t.Fatalf("property order = %v, want %v", g.PropertyIDs, wantOrder)
	}

	// concatenating the groups in order must reproduce a complete partition
	var flat []string
	for _, propID := range g.PropertyIDs {
		for _, b := range g.ByProperty[propID] {
			flat = append(flat, b.ID)
		}
	}
	want := []string{"B1", "B3", "B2", "B5", "B4"}
	if !reflect.DeepEqual(flat, want) {
		t.Fatalf("flattened groups = %v, want %v", flat, want)
	}
}

func TestGroupByPropertyEmptyAndDuplicates(t *testing.T) {
	g := GroupByProperty(nil)
	if len(g.PropertyIDs) != 0 || len(g.ByProperty) != 0 {
		t.Fatalf("empty input should yield empty partition, got %+v", g)
	}

	// a duplicated record is kept twice, grouping is not a set operation
	dup := Booking{ID: "B1", PropertyID: "1001"}
	g = GroupByProperty([]Booking{dup, dup})
	if len(g.ByProperty["1001"]) != 2 {
		t.Fatalf("duplicate booking collapsed, group = %v", g.ByProperty["1001"])
	}
}

func TestMonthCursorTransitions(t *testing.T) {
	c := MonthCursor{Year: 2024, Month: time.January}
	if prev := c.Prev(); prev.Year != 2023 || prev.Month != time.December {
		t.Errorf("Prev from January = %+v", prev)
	}
	c = MonthCursor{Year: 2023, Month: time.December}
	if next := c.Next(); next.Year != 2024 || next.Month != time.January {
		t.Errorf("Next from December = %+v", next)
	}
	c = MonthCursor{Year: 2023, Month: time.June}
	if got := c.Prev().Next(); got != c {
		t.Errorf("Prev then Next moved the cursor: %+v", got)
	}

	now := day(2023, time.December, 14)
	if today := Today(now); today.Year != 2023 || today.Month != time.December {
		t.Errorf("Today = %+v", today)
	}
}

func TestParseStatusFallback(t *testing.T) {
	tests := map[string]Status{
		"confirmed":   StatusConfirmed,
		"Confirmed":   StatusConfirmed,
		"pending":     StatusPending,
		"cancelled":   StatusCancelled,
		"canceled":    StatusCancelled,
		"maintenance": StatusMaintenance,
		"no_show":     StatusOther,
		"":            StatusOther,
	}
	for in, want := range tests {
		if got := ParseStatus(in); got != want {
			t.Errorf("ParseStatus(%q) = %v, want %v", in, got, want)
		}
	}
	if StatusOther.Color() == StatusConfirmed.Color() {
		t.Error("fallback status should not share the confirmed color")
	}
}

func TestStatusUnmarshalJSON(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`"confirmed"`), &s); err != nil || s != StatusConfirmed {
		t.Errorf(`"confirmed" -> %v, err %v`, s, err)
	}
	if err := json.Unmarshal([]byte(`"no_show"`), &s); err != nil || s != StatusOther {
		t.Errorf("unknown string should hit the fallback arm, got %v, err %v", s, err)
	}

	// non-string tokens are a type error, never a silent fallback
	for _, in := range []string{`5`, `{"status":"confirmed"}`, `true`} {
		if err := json.Unmarshal([]byte(in), &s); err == nil {
			t.Errorf("%s: expected type error", in)
		}
	}
}

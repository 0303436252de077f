// ABOUTME: Tests for day-string formatting and Monday-start week windows.
// ABOUTME: Covers month/year rollovers and the week-of-month numbering rule.
package dateweek

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestDayString(t *testing.T) {
	got := DayString(date(2024, time.March, 5))
	if got != "2024-03-05" {
		t.Errorf("DayString = %s, want 2024-03-05", got)
	}
}

func TestDayStringZeroPadding(t *testing.T) {
	got := DayString(date(2024, time.January, 1))
	if got != "2024-01-01" {
		t.Errorf("DayString = %s, want 2024-01-01", got)
	}
}

func TestWeekWindowStartsMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want Window
	}{
		{
			name: "sunday maps into the preceding monday's week",
			in:   date(2024, time.March, 10),
			want: Window{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"},
		},
		{
			name: "monday is its own week start",
			in:   date(2024, time.March, 4),
			want: Window{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"},
		},
		{
			name: "year rollover",
			in:   date(2024, time.December, 31),
			want: Window{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05"},
		},
		{
			name: "month rollover",
			in:   date(2024, time.April, 1),
			want: Window{"2024-04-01", "2024-04-02", "2024-04-03", "2024-04-04", "2024-04-05", "2024-04-06", "2024-04-07"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekWindow(tt.in)
			if got != tt.want {
				t.Errorf("WeekWindow = %v, want %v", got, tt.want)
			}
			if !got.Contains(DayString(tt.in)) {
				t.Errorf("window %v does not contain its own reference day %s", got, DayString(tt.in))
			}
		})
	}
}

func TestWeekWindowStableAcrossWeek(t *testing.T) {
	// Every day of a Monday-Sunday week yields the same window.
	monday := date(2024, time.March, 4)
	want := WeekWindow(monday)

	for i := 0; i < 7; i++ {
		got := WeekWindow(monday.AddDate(0, 0, i))
		if got != want {
			t.Errorf("day %d: WeekWindow = %v, want %v", i, got, want)
		}
	}
}

func TestWeekWindowConsecutiveDays(t *testing.T) {
	w := WeekWindow(date(2024, time.June, 15))
	for i := 1; i < 7; i++ {
		prev, _ := ParseDay(w[i-1])
		cur, _ := ParseDay(w[i])
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Errorf("window days not consecutive at index %d: %s -> %s", i, w[i-1], w[i])
		}
	}
}

func TestShiftWeek(t *testing.T) {
	base := date(2024, time.March, 10)

	if got := DayString(ShiftWeek(base, 1)); got != "2024-03-17" {
		t.Errorf("ShiftWeek(+1) = %s, want 2024-03-17", got)
	}
	if got := DayString(ShiftWeek(base, -2)); got != "2024-02-25" {
		t.Errorf("ShiftWeek(-2) = %s, want 2024-02-25", got)
	}
	if got := DayString(ShiftWeek(date(2024, time.December, 30), 1)); got != "2025-01-06" {
		t.Errorf("ShiftWeek across year = %s, want 2025-01-06", got)
	}
}

func TestWeekOfMonthLabel(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.March, 10), "Mar W2"},
		{date(2024, time.March, 1), "Mar W1"},
		{date(2024, time.March, 31), "Mar W5"},
		// A month opening on a Sunday yields week 0 for that day.
		{date(2024, time.September, 1), "Sep W0"},
		{date(2024, time.September, 2), "Sep W1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := WeekOfMonthLabel(tt.in); got != tt.want {
				t.Errorf("WeekOfMonthLabel(%s) = %s, want %s", DayString(tt.in), got, tt.want)
			}
		})
	}
}

func TestParseDayInvalid(t *testing.T) {
	for _, s := range []string{"not a date", "2024-3-5", "03/05/2024", ""} {
		if _, err := ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) expected error", s)
		}
	}
}

func TestWindowRangeLabel(t *testing.T) {
	w := WeekWindow(date(2024, time.March, 10))
	if got := w.RangeLabel(); got != "03/04 - 03/10" {
		t.Errorf("RangeLabel = %s, want 03/04 - 03/10", got)
	}
}

func TestWindowMondaySunday(t *testing.T) {
	w := WeekWindow(date(2024, time.March, 10))
	if w.Monday() != "2024-03-04" || w.Sunday() != "2024-03-10" {
		t.Errorf("Monday/Sunday = %s/%s, want 2024-03-04/2024-03-10", w.Monday(), w.Sunday())
	}
}

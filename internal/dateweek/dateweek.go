// ABOUTME: Pure calendar math for day-strings and Monday-start week windows.
// ABOUTME: Day-strings (YYYY-MM-DD) are the join key between plans and logs.
package dateweek

import (
	"fmt"
	"time"
)

// DayLayout is the canonical day-string format shared by plans and logs.
const DayLayout = "2006-01-02"

// A Window holds the seven day-strings of a Monday-to-Sunday week, in order.
type Window [7]string

// DayString formats t as a zero-padded YYYY-MM-DD using t's own local
// calendar fields. No timezone conversion happens, so the result never
// shifts across midnight.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a day-string in the local timezone. Callers that navigate
// by date treat an error as "ignore the jump, keep the current week".
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.Local)
}

// isoWeekday maps Go's Sunday=0 weekday to ISO Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// WeekWindow returns the week containing t. AddDate handles month and year
// rollovers, so a Monday in the previous month or year comes out right.
func WeekWindow(t time.Time) Window {
	monday := t.AddDate(0, 0, -(isoWeekday(t) - 1))

	var w Window
	for i := 0; i < 7; i++ {
		w[i] = DayString(monday.AddDate(0, 0, i))
	}
	return w
}

// ShiftWeek moves t by deltaWeeks whole weeks.
func ShiftWeek(t time.Time, deltaWeeks int) time.Time {
	return t.AddDate(0, 0, deltaWeeks*7)
}

// WeekOfMonthLabel labels t by month and week-of-month, e.g. "Mar W2".
// The week number is ceil((dayOfMonth + 6 - isoWeekday) / 7); a month whose
// first days belong to the previous month's week can yield week 0.
func WeekOfMonthLabel(t time.Time) string {
	n := t.Day() + 6 - isoWeekday(t)
	weekNum := (n + 6) / 7
	return fmt.Sprintf("%s W%d", t.Format("Jan"), weekNum)
}

// Contains reports whether day is one of the window's seven day-strings.
func (w Window) Contains(day string) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

// Monday returns the first day-string of the window.
func (w Window) Monday() string { return w[0] }

// Sunday returns the last day-string of the window.
func (w Window) Sunday() string { return w[6] }

// RangeLabel renders the window as "MM/DD - MM/DD" for headers.
func (w Window) RangeLabel() string {
	return w[0][5:7] + "/" + w[0][8:] + " - " + w[6][5:7] + "/" + w[6][8:]
}

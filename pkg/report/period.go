// Package report builds the attendance report aggregations: period windows,
// per-employee summaries, and the weekly trend series.
package report

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

func ValidPeriod(period string) bool {
	switch period {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// DateRange returns the report window for a period, relative to now in its
// own location: Monday of the current week, the 1st of the month, or Jan 1.
// The end of the window is the end of the current day.
func DateRange(period string, now time.Time) (start, end time.Time) {
	year, month, day := now.Date()
	loc := now.Location()

	switch period {
	case PeriodWeek:
		start = WeekStart(now)
	case PeriodMonth:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(year, month, day, 0, 0, 0, 0, loc)
	}

	end = time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// WeekStart returns local midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())

	offset := int(midnight.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started six days earlier
	}
	return midnight.AddDate(0, 0, -offset)
}

// WorkingDays counts the Monday-to-Friday days inside [start, end].
func WorkingDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("working days window ends (%s) before it starts (%s)", end, start)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   start,
		Until:     end,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to build working-day rule: %w", err)
	}
	return len(r.All()), nil
}

// InPeriod reports whether a record date falls inside the period ending now.
// Used by the per-employee report, which also accepts "day".
func InPeriod(recordDate, now time.Time, period string) bool {
	switch period {
	case PeriodDay:
		ry, rm, rd := recordDate.Date()
		ny, nm, nd := now.Date()
		return ry == ny && rm == nm && rd == nd
	case PeriodWeek:
		return !recordDate.Before(WeekStart(now))
	case PeriodMonth:
		return recordDate.Month() == now.Month() && recordDate.Year() == now.Year()
	case PeriodYear:
		return recordDate.Year() == now.Year()
	}
	return true
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	// 2025-06-11 is a Wednesday; its week starts Monday 2025-06-09.
	wed := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", WeekStart(wed).Format("2006-01-02"))

	// Sunday belongs to the week that started six days earlier.
	sun := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", WeekStart(sun).Format("2006-01-02"))

	mon := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-09", WeekStart(mon).Format("2006-01-02"))
}

func TestDateRange(t *testing.T) {
	now := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

	start, end := DateRange(PeriodWeek, now)
	assert.Equal(t, "2025-06-09", start.Format("2006-01-02"))
	assert.Equal(t, "2025-06-11", end.Format("2006-01-02"))
	assert.Equal(t, 23, end.Hour())

	start, _ = DateRange(PeriodMonth, now)
	assert.Equal(t, "2025-06-01", start.Format("2006-01-02"))

	start, _ = DateRange(PeriodYear, now)
	assert.Equal(t, "2025-01-01", start.Format("2006-01-02"))
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod("week"))
	assert.True(t, ValidPeriod("month"))
	assert.True(t, ValidPeriod("year"))
	assert.False(t, ValidPeriod("day"))
	assert.False(t, ValidPeriod(""))
	assert.False(t, ValidPeriod("fortnight"))
}

func TestWorkingDays(t *testing.T) {
	// Mon 2025-06-09 .. Fri 2025-06-13 inclusive.
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 13, 23, 59, 59, 0, time.UTC)
	days, err := WorkingDays(start, end)
	require.NoError(t, err)
	assert.Equal(t, 5, days)

	// Full week including the weekend still counts 5.
	end = time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	days, err = WorkingDays(start, end)
	require.NoError(t, err)
	assert.Equal(t, 5, days)

	// Saturday only.
	sat := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	days, err = WorkingDays(sat, sat.Add(23*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, days)

	_, err = WorkingDays(end, start)
	assert.Error(t, err)
}

func TestInPeriod(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	sameDay := time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	assert.True(t, InPeriod(sameDay, now, PeriodDay))
	assert.False(t, InPeriod(lastMonth, now, PeriodDay))

	assert.True(t, InPeriod(sameDay, now, PeriodWeek))
	assert.False(t, InPeriod(lastMonth, now, PeriodWeek))

	assert.True(t, InPeriod(sameDay, now, PeriodMonth))
	assert.False(t, InPeriod(lastMonth, now, PeriodMonth))

	assert.True(t, InPeriod(lastMonth, now, PeriodYear))
	assert.False(t, InPeriod(lastMonth.AddDate(-1, 0, 0), now, PeriodYear))

	// Unknown period means no filtering.
	assert.True(t, InPeriod(lastMonth, now, ""))
}

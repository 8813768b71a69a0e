package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-management-backend/models"
)

func record(name, date, status string, hours string) models.AttendanceRecord {
	return models.AttendanceRecord{
		EmployeeName: name,
		Date:         date,
		Status:       status,
		Hours:        hours,
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil, time.Now())
	assert.Empty(t, summary.Employees)
	assert.Empty(t, summary.Trends)
	assert.Zero(t, summary.OverallStats.TotalRecords)
	// No division by zero artifacts.
	assert.Zero(t, summary.OverallStats.AvgAttendance)
}

func TestBuildSummaryPerEmployee(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		record("Alice", "2025-06-09", "present", "8h"),
		record("Alice", "2025-06-10", "late", "7h 30m"),
		record("Alice", "2025-06-11", "absent", ""),
		record("Bob", "2025-06-09", "checked-out", "8h 15m"),
	}

	summary := BuildSummary(records, now)
	require.Len(t, summary.Employees, 2)

	// Bob has 100% attendance, so he sorts first.
	bob := summary.Employees[0]
	assert.Equal(t, "Bob", bob.EmployeeName)
	assert.Equal(t, 1, bob.PresentDays)
	assert.Equal(t, 100, bob.AttendancePercentage)
	assert.InDelta(t, 8.25, bob.TotalHours, 0.001)

	alice := summary.Employees[1]
	assert.Equal(t, "Alice", alice.EmployeeName)
	assert.Equal(t, 3, alice.TotalDays)
	// The late day counts as present too.
	assert.Equal(t, 2, alice.PresentDays)
	assert.Equal(t, 1, alice.LateDays)
	assert.Equal(t, 1, alice.AbsentDays)
	assert.Equal(t, 67, alice.AttendancePercentage)
	assert.InDelta(t, 15.5, alice.TotalHours, 0.001)
	assert.InDelta(t, 24, alice.ExpectedHours, 0.001)

	assert.Equal(t, 2, summary.OverallStats.TotalEmployees)
	assert.Equal(t, 4, summary.OverallStats.TotalRecords)
}

func TestBuildSummaryUnknownEmployee(t *testing.T) {
	records := []models.AttendanceRecord{record("", "2025-06-09", "present", "8h")}
	summary := BuildSummary(records, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	require.Len(t, summary.Employees, 1)
	assert.Equal(t, "Unknown", summary.Employees[0].EmployeeName)
}

func TestBuildSummaryTrends(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	// Seven distinct weeks; only the most recent five survive, in order.
	records := []models.AttendanceRecord{}
	for week := 0; week < 7; week++ {
		date := now.AddDate(0, 0, -7*week).Format("2006-01-02")
		records = append(records, record("Alice", date, "present", "8h"))
	}

	summary := BuildSummary(records, now)
	require.Len(t, summary.Trends, 5)

	for i := 1; i < len(summary.Trends); i++ {
		assert.Less(t, summary.Trends[i-1].WeekStart, summary.Trends[i].WeekStart,
			"trend buckets must be chronological")
	}
	last := summary.Trends[len(summary.Trends)-1]
	assert.Equal(t, WeekStart(now).Format("2006-01-02"), last.WeekStart)
	assert.Equal(t, 100, last.Attendance)
	assert.InDelta(t, 8, last.Hours, 0.001)
}

func TestBuildSummaryTrendHoursParseDecimals(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		record("Alice", "2025-06-10", "present", "8.5h"),
		record("Alice", "2025-06-11", "present", "7h 45m"),
	}

	summary := BuildSummary(records, now)
	require.Len(t, summary.Trends, 1)
	assert.InDelta(t, 16.25, summary.Trends[0].Hours, 0.001)
}

func TestRecordHoursPrecedence(t *testing.T) {
	checkIn := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8*time.Hour + 30*time.Minute)

	timestamps := models.AttendanceRecord{CheckInTime: &checkIn, CheckOutTime: &checkOut, TotalHours: 4, Hours: "2h"}
	assert.InDelta(t, 8.5, recordHours(timestamps), 0.001)

	numeric := models.AttendanceRecord{TotalHours: 7.5, Hours: "2h"}
	assert.InDelta(t, 7.5, recordHours(numeric), 0.001)

	display := models.AttendanceRecord{Hours: "6h 15m"}
	assert.InDelta(t, 6.25, recordHours(display), 0.001)

	empty := models.AttendanceRecord{Hours: "-"}
	assert.Zero(t, recordHours(empty))
}

func TestBuildEmployeeReport(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		record("Alice", "2025-06-10", "present", "8h"),
		record("Alice", "2025-06-11", "late", "7h"),
		record("Alice", "2025-04-01", "present", "8h"), // outside the month window
	}

	result := BuildEmployeeReport(records, PeriodMonth, now)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 1, result.Stats.PresentDays)
	assert.Equal(t, 1, result.Stats.LateDays)
	assert.InDelta(t, 15, result.Stats.TotalHours, 0.001)
}

func TestFilterByPeriodWeek(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC) // Wednesday
	records := []models.AttendanceRecord{
		record("Alice", "2025-06-09", "present", "8h"), // Monday of this week
		record("Alice", "2025-06-06", "present", "8h"), // previous Friday
	}

	filtered := FilterByPeriod(records, "week", now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2025-06-09", filtered[0].Date)
}

func TestFilterByPeriodLocalMonday(t *testing.T) {
	// Monday morning on a server west of UTC. The record dated Monday must
	// stay inside its own week even though the same date parsed as UTC would
	// fall before the local week start.
	loc := time.FixedZone("UTC-4", -4*60*60)
	now := time.Date(2025, 6, 9, 9, 0, 0, 0, loc)
	records := []models.AttendanceRecord{
		record("Alice", "2025-06-09", "present", "8h"),
	}

	filtered := FilterByPeriod(records, "week", now)
	require.Len(t, filtered, 1)
}

func TestFilterByPeriodInvalidKeepsAll(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		record("Alice", "2025-01-02", "present", "8h"),
		record("Bob", "2025-06-11", "present", "8h"),
	}

	assert.Len(t, FilterByPeriod(records, "", now), 2)
	assert.Len(t, FilterByPeriod(records, "decade", now), 2)
}

package report

import (
	"math"
	"sort"
	"time"

	"office-management-backend/models"
	"office-management-backend/pkg/attendance"
)

const (
	expectedHoursPerDay = 8
	trendWeekLimit      = 5
	earlyLeaveHour      = 18 // checking out before 6 PM counts as an early leave
)

type employeeAccumulator struct {
	models.EmployeeSummary
}

// FilterByPeriod keeps the records whose date falls inside the period window
// ending at now, reusing the backing array. An invalid period keeps everything.
// Dates are interpreted in now's location so a record dated Monday stays inside
// its own week on servers west of UTC.
func FilterByPeriod(records []models.AttendanceRecord, period string, now time.Time) []models.AttendanceRecord {
	if !ValidPeriod(period) {
		return records
	}
	filtered := records[:0]
	for _, record := range records {
		if InPeriod(recordDate(record, now), now, period) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// BuildSummary reduces every attendance record into the per-employee summary
// plus the weekly trend series. Records are grouped by employeeName; legacy
// documents without one land under "Unknown".
func BuildSummary(records []models.AttendanceRecord, now time.Time) models.SummaryReport {
	if len(records) == 0 {
		return models.SummaryReport{
			Employees:    []models.EmployeeSummary{},
			Trends:       []models.TrendPoint{},
			OverallStats: models.OverallStats{},
		}
	}

	stats := make(map[string]*employeeAccumulator)
	order := make([]string, 0)

	for _, record := range records {
		name := record.EmployeeName
		if name == "" {
			name = "Unknown"
		}

		emp, ok := stats[name]
		if !ok {
			emp = &employeeAccumulator{models.EmployeeSummary{
				EmployeeName: name,
				Department:   record.Department,
			}}
			stats[name] = emp
			order = append(order, name)
		}

		emp.TotalDays++

		switch {
		case attendance.CountsAsPresent(record.Status):
			emp.PresentDays++
		case attendance.IsAbsent(record.Status):
			emp.AbsentDays++
		case attendance.IsLate(record.Status):
			emp.LateDays++
			emp.PresentDays++ // a late day is still a worked day
		}

		if record.CheckOutTime != nil && record.CheckOutTime.Hour() < earlyLeaveHour {
			emp.EarlyLeaveDays++
		}

		emp.TotalHours += recordHours(record)
		emp.ExpectedHours += expectedHoursPerDay
	}

	employees := make([]models.EmployeeSummary, 0, len(stats))
	for _, name := range order {
		emp := stats[name]
		if emp.TotalDays > 0 {
			emp.AttendancePercentage = int(math.Round(float64(emp.PresentDays) / float64(emp.TotalDays) * 100))
			emp.AvgHoursPerDay = round2(emp.TotalHours / float64(emp.TotalDays))
		}
		emp.TotalHours = round2(emp.TotalHours)
		employees = append(employees, emp.EmployeeSummary)
	}

	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].AttendancePercentage > employees[j].AttendancePercentage
	})

	return models.SummaryReport{
		Employees:    employees,
		Trends:       buildTrends(records, now),
		OverallStats: buildOverallStats(employees, len(records)),
	}
}

// buildTrends buckets records by the Monday of their week and keeps the five
// most recent buckets in chronological order.
func buildTrends(records []models.AttendanceRecord, now time.Time) []models.TrendPoint {
	buckets := make(map[string]*models.TrendPoint)

	for _, record := range records {
		date := recordDate(record, now)
		weekStart := WeekStart(date)
		key := weekStart.Format("2006-01-02")

		point, ok := buckets[key]
		if !ok {
			point = &models.TrendPoint{
				Week:      "Week of " + weekStart.Format("Jan 2"),
				WeekStart: key,
			}
			buckets[key] = point
		}

		if attendance.CountsAsPresent(record.Status) {
			point.Attendance++
		}
		point.Hours += recordHours(record)
		point.Count++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > trendWeekLimit {
		keys = keys[len(keys)-trendWeekLimit:]
	}

	trends := make([]models.TrendPoint, 0, len(keys))
	for _, key := range keys {
		point := buckets[key]
		if point.Count > 0 {
			point.Attendance = int(math.Round(float64(point.Attendance) / float64(point.Count) * 100))
		}
		point.Hours = round2(point.Hours)
		trends = append(trends, *point)
	}
	return trends
}

func buildOverallStats(employees []models.EmployeeSummary, totalRecords int) models.OverallStats {
	stats := models.OverallStats{
		TotalEmployees: len(employees),
		TotalRecords:   totalRecords,
	}
	if len(employees) == 0 {
		return stats
	}

	var sumPercentage, sumHours float64
	for _, emp := range employees {
		sumPercentage += float64(emp.AttendancePercentage)
		sumHours += emp.TotalHours
	}
	stats.AvgAttendance = round2(sumPercentage / float64(len(employees)))
	stats.AvgHours = round2(sumHours / float64(len(employees)))
	return stats
}

// BuildEmployeeReport filters one employee's records down to a period and
// tallies their present/absent/late days and worked hours.
func BuildEmployeeReport(records []models.AttendanceRecord, period string, now time.Time) models.EmployeeReport {
	result := models.EmployeeReport{
		Records: []models.EmployeeReportRecord{},
	}

	for _, record := range records {
		if !InPeriod(recordDate(record, now), now, period) {
			continue
		}

		switch {
		case attendance.CountsAsPresent(record.Status):
			result.Stats.PresentDays++
		case attendance.IsAbsent(record.Status):
			result.Stats.AbsentDays++
		case attendance.IsLate(record.Status):
			result.Stats.LateDays++
		}
		result.Stats.TotalHours += recordHours(record)

		out := models.EmployeeReportRecord{
			Date:         record.Date,
			Status:       record.Status,
			Hours:        record.Hours,
			EmployeeName: record.EmployeeName,
			Department:   record.Department,
		}
		if record.CheckInTime != nil {
			out.CheckInTime = record.CheckInTime.Format(time.RFC3339)
		}
		if record.CheckOutTime != nil {
			out.CheckOutTime = record.CheckOutTime.Format(time.RFC3339)
		}
		result.Records = append(result.Records, out)
	}

	result.Stats.TotalHours = round2(result.Stats.TotalHours)
	return result
}

// recordHours resolves worked hours with the same precedence everywhere:
// check-in/out timestamps, then the numeric totalHours field, then the
// display string ("8h 15m").
func recordHours(record models.AttendanceRecord) float64 {
	if record.CheckInTime != nil && record.CheckOutTime != nil {
		return record.CheckOutTime.Sub(*record.CheckInTime).Hours()
	}
	if record.TotalHours > 0 {
		return record.TotalHours
	}
	if hours, ok := attendance.ParseHours(record.Hours); ok {
		return hours
	}
	return 0
}

func recordDate(record models.AttendanceRecord, now time.Time) time.Time {
	if record.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", record.Date, now.Location()); err == nil {
			return parsed
		}
	}
	if !record.CreatedAt.IsZero() {
		return record.CreatedAt
	}
	return now
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

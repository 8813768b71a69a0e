package models

// EmployeeSummary is one row of the in-process attendance summary report,
// grouped by employee name.
type EmployeeSummary struct {
	EmployeeName         string  `json:"employeeName"`
	Department           string  `json:"department"`
	TotalDays            int     `json:"totalDays"`
	PresentDays          int     `json:"presentDays"`
	AbsentDays           int     `json:"absentDays"`
	LateDays             int     `json:"lateDays"`
	EarlyLeaveDays       int     `json:"earlyLeaveDays"`
	TotalHours           float64 `json:"totalHours"`
	ExpectedHours        float64 `json:"expectedHours"`
	AttendancePercentage int     `json:"attendancePercentage"`
	AvgHoursPerDay       float64 `json:"avgHoursPerDay"`
}

// TrendPoint is one weekly bucket of the summary trend series.
type TrendPoint struct {
	Week       string  `json:"week"`
	WeekStart  string  `json:"weekStart"`
	Attendance int     `json:"attendance"`
	Hours      float64 `json:"hours"`
	Count      int     `json:"count"`
}

type OverallStats struct {
	TotalEmployees int     `json:"totalEmployees"`
	AvgAttendance  float64 `json:"avgAttendance"`
	AvgHours       float64 `json:"avgHours"`
	TotalRecords   int     `json:"totalRecords"`
}

type SummaryReport struct {
	Employees    []EmployeeSummary `json:"employees"`
	Trends       []TrendPoint      `json:"trends"`
	OverallStats OverallStats      `json:"overallStats"`
}

// PeriodSummary is the DB-side aggregation result for one employee over a
// week/month/year window.
type PeriodSummary struct {
	EmployeeID           string  `json:"employeeId"`
	EmployeeName         string  `json:"employeeName,omitempty"`
	Department           string  `json:"department,omitempty"`
	Period               string  `json:"period"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	TotalDays            int     `json:"totalDays"`
	PresentDays          int     `json:"presentDays"`
	AbsentDays           int     `json:"absentDays"`
	LateDays             int     `json:"lateDays"`
	EarlyLeaveDays       int     `json:"earlyLeaveDays"`
	TotalHours           float64 `json:"totalHours"`
	ExpectedHours        float64 `json:"expectedHours"`
	OvertimeHours        float64 `json:"overtimeHours"`
	WorkingDays          int     `json:"workingDays"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// EmployeeReportRecord is the trimmed record shape returned by the
// per-employee report endpoint.
type EmployeeReportRecord struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
	Hours        string `json:"hours,omitempty"`
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department,omitempty"`
}

type EmployeeReportStats struct {
	PresentDays int     `json:"presentDays"`
	AbsentDays  int     `json:"absentDays"`
	LateDays    int     `json:"lateDays"`
	TotalHours  float64 `json:"totalHours"`
}

type EmployeeReport struct {
	Records []EmployeeReportRecord `json:"records"`
	Stats   EmployeeReportStats    `json:"stats"`
}

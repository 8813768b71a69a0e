package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-management-backend/models"
	"office-management-backend/pkg/report"
	"office-management-backend/repository"
)

type fakeReportRepo struct {
	totals map[string]*repository.PeriodTotals // keyed by employeeID
	ids    []string
}

func (f *fakeReportRepo) PeriodTotals(ctx context.Context, employeeID string, start, end time.Time) (*repository.PeriodTotals, error) {
	if totals, ok := f.totals[employeeID]; ok {
		copied := *totals
		return &copied, nil
	}
	return &repository.PeriodTotals{}, nil
}

func (f *fakeReportRepo) EmployeeIDs(ctx context.Context) ([]string, error) {
	return f.ids, nil
}

func newReportTestApp(t *testing.T, attendanceRepo *fakeAttendanceRepo, reportRepo *fakeReportRepo) *fiber.App {
	t.Helper()

	handler := NewReportHandler(attendanceRepo, reportRepo)
	app := fiber.New()
	reports := app.Group("/api/reports")
	reports.Get("/", handler.GetSummaryReport)
	reports.Get("/employee", handler.GetEmployeeReport)
	reports.Get("/attendance-summary/:period/all", handler.GetAllPeriodSummaries)
	reports.Get("/attendance-summary/:employeeId/:period", handler.GetPeriodSummary)
	return app
}

func TestGetPeriodSummaryMath(t *testing.T) {
	reportRepo := &fakeReportRepo{
		totals: map[string]*repository.PeriodTotals{
			"emp-1": {PresentDays: 4, AbsentDays: 1, LateDays: 1, TotalHours: 43.5, TotalDays: 5},
		},
	}
	app := newReportTestApp(t, newFakeAttendanceRepo(), reportRepo)

	status, body := doJSON(t, app, "GET", "/api/reports/attendance-summary/emp-1/week", "")
	require.Equal(t, fiber.StatusOK, status)

	// The week window runs Monday through today, so recompute its working
	// day count rather than hardcoding it.
	start, end := report.DateRange("week", time.Now())
	workingDays, err := report.WorkingDays(start, end)
	require.NoError(t, err)

	expectedHours := float64(workingDays) * 8
	overtime := 43.5 - expectedHours
	if overtime < 0 {
		overtime = 0
	}
	percentage := math.Round(4/float64(workingDays)*10000) / 100

	assert.Equal(t, float64(workingDays), body["workingDays"])
	assert.Equal(t, expectedHours, body["expectedHours"])
	assert.Equal(t, 43.5, body["totalHours"])
	assert.Equal(t, math.Round(overtime*100)/100, body["overtimeHours"])
	assert.Equal(t, percentage, body["attendancePercentage"])
	assert.Equal(t, float64(4), body["presentDays"])
	assert.Equal(t, "week", body["period"])
}

func TestGetPeriodSummaryInvalidPeriod(t *testing.T) {
	app := newReportTestApp(t, newFakeAttendanceRepo(), &fakeReportRepo{})

	status, body := doJSON(t, app, "GET", "/api/reports/attendance-summary/emp-1/decade", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Period must be week, month or year", body["error"])
}

func TestGetAllPeriodSummaries(t *testing.T) {
	reportRepo := &fakeReportRepo{
		ids: []string{"emp-1", "emp-2", "emp-3"},
		totals: map[string]*repository.PeriodTotals{
			"emp-2": {PresentDays: 5, TotalHours: 40, TotalDays: 5},
		},
	}
	app := newReportTestApp(t, newFakeAttendanceRepo(), reportRepo)

	req := httptest.NewRequest("GET", "/api/reports/attendance-summary/week/all", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summaries []models.PeriodSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	require.Len(t, summaries, 3)

	// Fan-out keeps each summary at its employee's index.
	assert.Equal(t, "emp-1", summaries[0].EmployeeID)
	assert.Equal(t, "emp-2", summaries[1].EmployeeID)
	assert.Equal(t, float64(40), summaries[1].TotalHours)
	assert.Equal(t, float64(0), summaries[0].AttendancePercentage)
}

func TestGetSummaryReportEmpty(t *testing.T) {
	app := newReportTestApp(t, newFakeAttendanceRepo(), &fakeReportRepo{})

	status, body := doJSON(t, app, "GET", "/api/reports", "")
	require.Equal(t, fiber.StatusOK, status)

	stats, ok := body["overallStats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), stats["totalEmployees"])
}

func TestGetEmployeeReportRequiresName(t *testing.T) {
	app := newReportTestApp(t, newFakeAttendanceRepo(), &fakeReportRepo{})

	status, body := doJSON(t, app, "GET", "/api/reports/employee", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "employeeName is required", body["error"])
}

package handlers

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"office-management-backend/models"
	"office-management-backend/pkg/report"
	"office-management-backend/repository"
)

const (
	workdayHours = 8.0

	// Upper bound on concurrent per-employee aggregations in the all-employees
	// report, so one request cannot monopolize the connection pool.
	reportFanOutLimit = 8
)

type ReportHandler struct {
	attendanceRepo repository.AttendanceRepository
	reportRepo     repository.ReportRepository
}

func NewReportHandler(attendanceRepo repository.AttendanceRepository, reportRepo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
	}
}

// GetSummaryReport godoc
// @Summary Attendance summary report across all employees
// @Description Per-employee totals, a weekly trend series and overall stats, reduced in process over the attendance collection.
// @Tags Reports
// @Produce json
// @Param period query string false "week, month or year (default all records)"
// @Success 200 {object} models.SummaryReport
// @Router /reports [get]
func (h *ReportHandler) GetSummaryReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.FindAll(ctx)
	if err != nil {
		log.Printf("ERROR: load attendance for summary report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	now := time.Now()
	records = report.FilterByPeriod(records, c.Query("period"), now)
	summary := report.BuildSummary(records, now)
	return c.Status(fiber.StatusOK).JSON(summary)
}

// GetEmployeeReport godoc
// @Summary Attendance records and stats for one employee
// @Tags Reports
// @Produce json
// @Param employeeName query string true "Employee name"
// @Param period query string false "day, week, month or year"
// @Success 200 {object} models.EmployeeReport
// @Failure 400 {object} object{error=string}
// @Router /reports/employee [get]
func (h *ReportHandler) GetEmployeeReport(c *fiber.Ctx) error {
	employeeName := c.Query("employeeName")
	if employeeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeName is required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.FindByEmployeeName(ctx, employeeName)
	if err != nil {
		log.Printf("ERROR: load attendance for %s: %v", employeeName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	result := report.BuildEmployeeReport(records, c.Query("period"), time.Now())
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetPeriodSummary godoc
// @Summary Aggregated attendance summary for one employee over a period
// @Description Counts are grouped database side; workingDays is the Mon-Fri day count of the window.
// @Tags Reports
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Param period path string true "week, month or year"
// @Success 200 {object} models.PeriodSummary
// @Failure 400 {object} object{error=string}
// @Router /reports/attendance-summary/{employeeId}/{period} [get]
func (h *ReportHandler) GetPeriodSummary(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	period := c.Params("period")
	if !report.ValidPeriod(period) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Period must be week, month or year"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.buildPeriodSummary(ctx, employeeID, period, time.Now())
	if err != nil {
		log.Printf("ERROR: period summary for %s/%s: %v", employeeID, period, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

// GetAllPeriodSummaries godoc
// @Summary Aggregated attendance summaries for every employee over a period
// @Tags Reports
// @Produce json
// @Param period path string true "week, month or year"
// @Success 200 {array} models.PeriodSummary
// @Failure 400 {object} object{error=string}
// @Router /reports/attendance-summary/{period}/all [get]
func (h *ReportHandler) GetAllPeriodSummaries(c *fiber.Ctx) error {
	period := c.Params("period")
	if !report.ValidPeriod(period) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Period must be week, month or year"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	ids, err := h.reportRepo.EmployeeIDs(ctx)
	if err != nil {
		log.Printf("ERROR: list employees for report fan-out: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	now := time.Now()
	summaries := make([]*models.PeriodSummary, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportFanOutLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			summary, err := h.buildPeriodSummary(gctx, id, period, now)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("ERROR: all-employees period summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}

func (h *ReportHandler) buildPeriodSummary(ctx context.Context, employeeID, period string, now time.Time) (*models.PeriodSummary, error) {
	start, end := report.DateRange(period, now)

	totals, err := h.reportRepo.PeriodTotals(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	workingDays, err := report.WorkingDays(start, end)
	if err != nil {
		return nil, err
	}

	expectedHours := float64(workingDays) * workdayHours
	overtimeHours := totals.TotalHours - expectedHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	var percentage float64
	if workingDays > 0 {
		percentage = math.Round(float64(totals.PresentDays)/float64(workingDays)*10000) / 100
	}

	return &models.PeriodSummary{
		EmployeeID:           employeeID,
		Period:               period,
		StartDate:            start.Format("2006-01-02"),
		EndDate:              end.Format("2006-01-02"),
		TotalDays:            totals.TotalDays,
		PresentDays:          totals.PresentDays,
		AbsentDays:           totals.AbsentDays,
		LateDays:             totals.LateDays,
		TotalHours:           math.Round(totals.TotalHours*100) / 100,
		ExpectedHours:        expectedHours,
		OvertimeHours:        math.Round(overtimeHours*100) / 100,
		WorkingDays:          workingDays,
		AttendancePercentage: percentage,
	}, nil
}

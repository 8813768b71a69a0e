package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-management-backend/models"
	"office-management-backend/pkg/attendance"
)

func newAttendanceTestApp(t *testing.T) (*fiber.App, *fakeAttendanceRepo) {
	t.Helper()

	repo := newFakeAttendanceRepo()
	handler := NewAttendanceHandler(repo)

	app := fiber.New()
	att := app.Group("/api/attendance")
	att.Post("/checkin", handler.CheckIn)
	att.Post("/checkout", handler.CheckOut)
	att.Get("/qr", handler.GenerateQRCode)
	att.Get("/", handler.GetAttendance)
	att.Post("/", handler.CreateAttendance)
	return app, repo
}

func TestCheckInCreatesRecord(t *testing.T) {
	app, repo := newAttendanceTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/attendance/checkin",
		`{"employeeId":"emp-1","employeeName":"Maya Iyer","location":"HQ"}`)
	require.Equal(t, fiber.StatusCreated, status)

	assert.Equal(t, time.Now().Format("2006-01-02"), body["date"])
	assert.NotEmpty(t, body["checkInTime"])
	assert.Contains(t, []string{attendance.StatusPresent, attendance.StatusLate}, body["status"])
	assert.Len(t, repo.records, 1)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	app, _ := newAttendanceTestApp(t)

	payload := `{"employeeId":"emp-1","employeeName":"Maya Iyer"}`
	status, _ := doJSON(t, app, "POST", "/api/attendance/checkin", payload)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/attendance/checkin", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Already checked in today", body["error"])
}

func TestCheckInRejectsStaleQRCode(t *testing.T) {
	app, repo := newAttendanceTestApp(t)
	repo.activeQR = &models.QRCode{Code: "live-code", Date: time.Now().Format("2006-01-02")}

	status, body := doJSON(t, app, "POST", "/api/attendance/checkin",
		`{"employeeId":"emp-1","employeeName":"Maya Iyer","qrCode":"stale-code"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid or expired QR code", body["error"])

	status, _ = doJSON(t, app, "POST", "/api/attendance/checkin",
		`{"employeeId":"emp-1","employeeName":"Maya Iyer","qrCode":"live-code"}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	app, _ := newAttendanceTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/attendance/checkout", `{"employeeId":"emp-1"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Not checked in today", body["error"])
}

func TestCheckOutComputesWorkedHours(t *testing.T) {
	app, repo := newAttendanceTestApp(t)

	checkIn := time.Now().Add(-8 * time.Hour)
	repo.Create(nil, &models.AttendanceRecord{
		EmployeeID:   "emp-1",
		EmployeeName: "Maya Iyer",
		Date:         time.Now().Format("2006-01-02"),
		CheckInTime:  &checkIn,
		Status:       attendance.StatusCheckedIn,
	})

	status, body := doJSON(t, app, "POST", "/api/attendance/checkout", `{"employeeId":"emp-1"}`)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, attendance.StatusCheckedOut, body["status"])
	assert.InDelta(t, 8.0, body["totalHours"], 0.1)
	assert.True(t, strings.HasPrefix(body["hours"].(string), "8h"), "hours was %v", body["hours"])

	status, body = doJSON(t, app, "POST", "/api/attendance/checkout", `{"employeeId":"emp-1"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Already checked out today", body["error"])
}

func TestGenerateQRCode(t *testing.T) {
	app, repo := newAttendanceTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/attendance/qr", "")
	require.Equal(t, fiber.StatusCreated, status)

	require.NotNil(t, repo.activeQR)
	assert.Equal(t, repo.activeQR.Code, body["code"])
	assert.True(t, strings.HasPrefix(body["qrImage"].(string), "data:image/png;base64,"))
	assert.NotEmpty(t, body["expiresAt"])
}

func TestCreateAttendanceNormalizesStatus(t *testing.T) {
	app, _ := newAttendanceTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/attendance",
		`{"employeeId":"emp-1","employeeName":"Maya Iyer","status":"Checked In"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, attendance.StatusCheckedIn, body["status"])
}

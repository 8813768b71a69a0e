package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-management-backend/models"
)

func newLeaveTestApp(t *testing.T) (*fiber.App, *fakeLeaveRepo, *fakeBalanceRepo) {
	t.Helper()

	leaveRepo := newFakeLeaveRepo()
	balanceRepo := newFakeBalanceRepo()
	handler := NewLeaveHandler(leaveRepo, balanceRepo)

	app := fiber.New()
	leaves := app.Group("/api/leaves")
	leaves.Get("/balance", handler.GetAllLeaveBalances)
	leaves.Get("/balance/:employeeId", handler.GetLeaveBalance)
	leaves.Patch("/balance/:employeeId", handler.UpdateLeaveBalance)
	leaves.Get("/", handler.GetLeaves)
	leaves.Post("/", handler.CreateLeave)
	leaves.Patch("/:id", handler.DecideLeave)
	leaves.Delete("/:id", handler.DeleteLeave)
	return app, leaveRepo, balanceRepo
}

func TestCreateLeaveInclusiveDays(t *testing.T) {
	app, repo, _ := newLeaveTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/leaves",
		`{"employeeId":"emp-1","employeeName":"Maya Iyer","leaveType":"sick","startDate":"2025-06-09","endDate":"2025-06-11","reason":"flu"}`)
	require.Equal(t, fiber.StatusCreated, status)

	// Mon..Wed is 3 days, and the short leave type is normalized.
	assert.Equal(t, float64(3), body["days"])
	assert.Equal(t, "sickLeave", body["leaveType"])
	assert.Equal(t, "pending", body["status"])
	assert.Len(t, repo.leaves, 1)
}

func TestCreateLeaveSingleDay(t *testing.T) {
	app, _, _ := newLeaveTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/leaves",
		`{"employeeId":"emp-1","leaveType":"paidLeave","startDate":"2025-06-09","endDate":"2025-06-09"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(1), body["days"])
}

func TestCreateLeaveEndBeforeStart(t *testing.T) {
	app, _, _ := newLeaveTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/leaves",
		`{"employeeId":"emp-1","leaveType":"sick","startDate":"2025-06-11","endDate":"2025-06-09"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "endDate must not be before startDate", body["error"])
}

func TestDecideLeave(t *testing.T) {
	app, repo, _ := newLeaveTestApp(t)

	leave := &models.Leave{EmployeeID: "emp-1", Status: "pending"}
	repo.Create(nil, leave)

	status, body := doJSON(t, app, "PATCH", "/api/leaves/"+leave.ID.Hex(),
		`{"status":"approved","approvedBy":"admin"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, "admin", body["approvedBy"])
}

func TestDecideLeaveTwice(t *testing.T) {
	app, repo, _ := newLeaveTestApp(t)

	leave := &models.Leave{EmployeeID: "emp-1", Status: "pending"}
	repo.Create(nil, leave)

	status, _ := doJSON(t, app, "PATCH", "/api/leaves/"+leave.ID.Hex(),
		`{"status":"approved","approvedBy":"admin"}`)
	require.Equal(t, fiber.StatusOK, status)

	// A second decision must not go through, or the balance would be
	// debited again.
	status, body := doJSON(t, app, "PATCH", "/api/leaves/"+leave.ID.Hex(),
		`{"status":"approved","approvedBy":"admin"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Leave request already decided", body["error"])
}

func TestDecideLeaveRejectsUnknownStatus(t *testing.T) {
	app, repo, _ := newLeaveTestApp(t)

	leave := &models.Leave{EmployeeID: "emp-1", Status: "pending"}
	repo.Create(nil, leave)

	status, body := doJSON(t, app, "PATCH", "/api/leaves/"+leave.ID.Hex(), `{"status":"maybe"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "errors")
}

func TestDecideLeaveNotFound(t *testing.T) {
	app, _, _ := newLeaveTestApp(t)

	status, _ := doJSON(t, app, "PATCH", "/api/leaves/64f000000000000000000000", `{"status":"rejected"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteLeaveOnlyPending(t *testing.T) {
	app, repo, _ := newLeaveTestApp(t)

	approved := &models.Leave{EmployeeID: "emp-1", Status: "approved"}
	repo.Create(nil, approved)
	pending := &models.Leave{EmployeeID: "emp-2", Status: "pending"}
	repo.Create(nil, pending)

	status, body := doJSON(t, app, "DELETE", "/api/leaves/"+approved.ID.Hex(), "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Only pending leave requests can be deleted", body["error"])

	status, _ = doJSON(t, app, "DELETE", "/api/leaves/"+pending.ID.Hex(), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, repo.leaves, 1)
}

func TestGetLeaveBalanceCreatesDefaults(t *testing.T) {
	app, _, balanceRepo := newLeaveTestApp(t)

	req := httptest.NewRequest("GET", "/api/leaves/balance/emp-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	balance := balanceRepo.balances["emp-1"]
	require.NotNil(t, balance)
	assert.Equal(t, 10, balance.SickLeave.Remaining)
	assert.Equal(t, 12, balance.CasualLeave.Remaining)
	assert.Equal(t, 20, balance.PaidLeave.Remaining)
}

func TestUpdateLeaveBalance(t *testing.T) {
	app, _, balanceRepo := newLeaveTestApp(t)
	balanceRepo.FindOrCreate(nil, "emp-1", 2025)

	status, body := doJSON(t, app, "PATCH", "/api/leaves/balance/emp-1",
		`{"leaveType":"casual","daysUsed":4}`)
	require.Equal(t, fiber.StatusOK, status)

	bucket, ok := body["casualLeave"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4), bucket["used"])
	assert.Equal(t, float64(8), bucket["remaining"])
}

func TestUpdateLeaveBalanceNotFound(t *testing.T) {
	app, _, _ := newLeaveTestApp(t)

	status, body := doJSON(t, app, "PATCH", "/api/leaves/balance/ghost",
		`{"leaveType":"sickLeave","daysUsed":1}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Leave balance not found", body["error"])
}

package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
	util "office-management-backend/pkg/utils"
	"office-management-backend/repository"
)

type LeaveHandler struct {
	leaveRepo   repository.LeaveRepository
	balanceRepo repository.LeaveBalanceRepository
}

func NewLeaveHandler(leaveRepo repository.LeaveRepository, balanceRepo repository.LeaveBalanceRepository) *LeaveHandler {
	return &LeaveHandler{
		leaveRepo:   leaveRepo,
		balanceRepo: balanceRepo,
	}
}

// CreateLeave godoc
// @Summary Submit a leave request
// @Description Days are the inclusive difference between startDate and endDate. New requests start as pending.
// @Tags Leaves
// @Accept json
// @Produce json
// @Param payload body models.LeaveCreatePayload true "Leave request"
// @Success 201 {object} models.Leave
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /leaves [post]
func (h *LeaveHandler) CreateLeave(c *fiber.Ctx) error {
	var payload models.LeaveCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid startDate"})
	}
	end, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid endDate"})
	}
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "endDate must not be before startDate"})
	}

	// Inclusive: Mon..Wed is 3 days.
	days := int(end.Sub(start).Hours()/24) + 1

	leave := &models.Leave{
		EmployeeID:   payload.EmployeeID,
		EmployeeName: payload.EmployeeName,
		LeaveType:    models.NormalizeLeaveType(payload.LeaveType),
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Days:         days,
		Reason:       payload.Reason,
		Status:       "pending",
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.leaveRepo.Create(ctx, leave); err != nil {
		log.Printf("ERROR: create leave: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create leave request"})
	}

	return c.Status(fiber.StatusCreated).JSON(leave)
}

// GetLeaves godoc
// @Summary List leave requests with optional filters
// @Tags Leaves
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param status query string false "pending, approved or rejected"
// @Param leaveType query string false "Leave type"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} models.Leave
// @Router /leaves [get]
func (h *LeaveHandler) GetLeaves(c *fiber.Ctx) error {
	filter := models.LeaveFilter{
		EmployeeID: c.Query("employeeId"),
		Status:     c.Query("status"),
		LeaveType:  c.Query("leaveType"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leaves, err := h.leaveRepo.FindAll(ctx, filter)
	if err != nil {
		log.Printf("ERROR: list leaves: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leaves"})
	}
	return c.Status(fiber.StatusOK).JSON(leaves)
}

// DecideLeave godoc
// @Summary Approve or reject a leave request
// @Description Approval debits the employee's balance in the same transaction as the status write.
// @Tags Leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param payload body models.LeaveDecisionPayload true "Decision"
// @Success 200 {object} models.Leave
// @Failure 400 {object} object{error=string} "Status must be approved or rejected, or the request was already decided"
// @Failure 404 {object} object{error=string}
// @Router /leaves/{id} [patch]
func (h *LeaveHandler) DecideLeave(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave ID format"})
	}

	var payload models.LeaveDecisionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.Decide(ctx, objID, payload.Status, payload.ApprovedBy)
	if err != nil {
		if errors.Is(err, repository.ErrLeaveNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
		}
		if errors.Is(err, repository.ErrLeaveAlreadyDecided) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Leave request already decided"})
		}
		log.Printf("ERROR: decide leave %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave request"})
	}

	return c.Status(fiber.StatusOK).JSON(leave)
}

// DeleteLeave godoc
// @Summary Withdraw a pending leave request
// @Tags Leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string} "Only pending requests can be deleted"
// @Failure 404 {object} object{error=string}
// @Router /leaves/{id} [delete]
func (h *LeaveHandler) DeleteLeave(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindByID(ctx, objID)
	if err != nil {
		log.Printf("ERROR: find leave %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete leave request"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if leave.Status != "pending" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending leave requests can be deleted"})
	}

	if _, err := h.leaveRepo.Delete(ctx, objID); err != nil {
		log.Printf("ERROR: delete leave %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete leave request"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Leave request deleted successfully"})
}

// GetLeaveBalance godoc
// @Summary Get an employee's leave balance for the current year
// @Description Creates the default allowance document on first read.
// @Tags Leaves
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} models.LeaveBalance
// @Router /leaves/balance/{employeeId} [get]
func (h *LeaveHandler) GetLeaveBalance(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employee ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	balance, err := h.balanceRepo.FindOrCreate(ctx, employeeID, time.Now().Year())
	if err != nil {
		log.Printf("ERROR: leave balance for %s: %v", employeeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave balance"})
	}
	return c.Status(fiber.StatusOK).JSON(balance)
}

// UpdateLeaveBalance godoc
// @Summary Debit an employee's leave balance directly
// @Tags Leaves
// @Accept json
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Param payload body models.BalanceUpdatePayload true "Debit"
// @Success 200 {object} models.LeaveBalance
// @Failure 404 {object} object{error=string}
// @Router /leaves/balance/{employeeId} [patch]
func (h *LeaveHandler) UpdateLeaveBalance(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employee ID is required"})
	}

	var payload models.BalanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	balance, err := h.balanceRepo.ApplyUsage(ctx, employeeID, time.Now().Year(), payload.LeaveType, payload.DaysUsed)
	if err != nil {
		if errors.Is(err, repository.ErrBalanceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave balance not found"})
		}
		log.Printf("ERROR: update leave balance for %s: %v", employeeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update leave balance"})
	}
	return c.Status(fiber.StatusOK).JSON(balance)
}

// GetAllLeaveBalances godoc
// @Summary List every employee's balance for the current year
// @Tags Leaves
// @Produce json
// @Success 200 {array} models.LeaveBalance
// @Router /leaves/balance [get]
func (h *LeaveHandler) GetAllLeaveBalances(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	balances, err := h.balanceRepo.FindAllForYear(ctx, time.Now().Year())
	if err != nil {
		log.Printf("ERROR: list leave balances: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave balances"})
	}
	return c.Status(fiber.StatusOK).JSON(balances)
}

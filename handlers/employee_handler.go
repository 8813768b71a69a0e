package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
	"office-management-backend/pkg/password"
	util "office-management-backend/pkg/utils"
	"office-management-backend/repository"
)

type EmployeeHandler struct {
	userRepo repository.UserRepository
}

func NewEmployeeHandler(userRepo repository.UserRepository) *EmployeeHandler {
	return &EmployeeHandler{userRepo: userRepo}
}

// GetEmployees godoc
// @Summary List employees or fetch one by id
// @Tags Employees
// @Produce json
// @Param id query string false "Employee ID"
// @Success 200 {array} models.User
// @Failure 404 {object} object{error=string}
// @Router /employees [get]
func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID format"})
		}
		user, err := h.userRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find employee %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employee"})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(fiber.StatusOK).JSON(user)
	}

	users, err := h.userRepo.FindAll(ctx)
	if err != nil {
		log.Printf("ERROR: list employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// CreateEmployee godoc
// @Summary Create an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body models.EmployeeCreatePayload true "Employee"
// @Success 201 {object} models.User
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		log.Printf("ERROR: hash password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	status := payload.Status
	if status == "" {
		status = "active"
	}

	user := &models.User{
		Name:        payload.Name,
		Email:       payload.Email,
		Password:    hashed,
		Phone:       payload.Phone,
		Role:        payload.Role,
		Department:  payload.Department,
		Salary:      payload.Salary,
		Status:      status,
		JoiningDate: payload.JoiningDate,
		Avatar:      payload.Avatar,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
		}
		log.Printf("ERROR: create employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id query string true "Employee ID"
// @Param payload body models.EmployeeUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /employees [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID format"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	update := bson.M{}
	if payload.Name != "" {
		update["name"] = payload.Name
	}
	if payload.Email != "" {
		update["email"] = payload.Email
	}
	if payload.Password != "" {
		hashed, err := password.HashPassword(payload.Password)
		if err != nil {
			log.Printf("ERROR: hash password: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update employee"})
		}
		update["password"] = hashed
	}
	if payload.Phone != "" {
		update["phone"] = payload.Phone
	}
	if payload.Role != "" {
		update["role"] = payload.Role
	}
	if payload.Department != "" {
		update["department"] = payload.Department
	}
	if payload.Salary != nil {
		update["salary"] = *payload.Salary
	}
	if payload.Status != "" {
		update["status"] = payload.Status
	}
	if payload.JoiningDate != "" {
		update["joiningDate"] = payload.JoiningDate
	}
	if payload.Avatar != "" {
		update["avatar"] = payload.Avatar
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update employee %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee updated successfully"})
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Tags Employees
// @Produce json
// @Param id query string true "Employee ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /employees [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete employee %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employee"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee deleted successfully"})
}

// GetEmployeeStats godoc
// @Summary Aggregate employee statistics
// @Tags Employees
// @Produce json
// @Success 200 {object} models.EmployeeStats
// @Router /employees/stats [get]
func (h *EmployeeHandler) GetEmployeeStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.userRepo.Stats(ctx)
	if err != nil {
		log.Printf("ERROR: employee stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employee stats"})
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"office-management-backend/models"
	util "office-management-backend/pkg/utils"
	"office-management-backend/repository"
)

type DailyTaskHandler struct {
	dailyTaskRepo repository.DailyTaskRepository
}

func NewDailyTaskHandler(dailyTaskRepo repository.DailyTaskRepository) *DailyTaskHandler {
	return &DailyTaskHandler{dailyTaskRepo: dailyTaskRepo}
}

// GetDailyTasks godoc
// @Summary List daily task logs with employee names joined, or fetch one by id
// @Tags DailyTasks
// @Produce json
// @Param id query string false "Daily task ID"
// @Success 200 {array} models.DailyTaskWithEmployee
// @Failure 404 {object} object{error=string}
// @Router /daily-tasks [get]
func (h *DailyTaskHandler) GetDailyTasks(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid daily task ID format"})
		}
		task, err := h.dailyTaskRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find daily task %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch daily task"})
		}
		if task == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Daily task not found"})
		}
		return c.Status(fiber.StatusOK).JSON(task)
	}

	tasks, err := h.dailyTaskRepo.FindAllWithEmployee(ctx)
	if err != nil {
		log.Printf("ERROR: list daily tasks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch daily tasks"})
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

// CreateDailyTask godoc
// @Summary Create a daily task log
// @Tags DailyTasks
// @Accept json
// @Produce json
// @Param payload body models.DailyTaskCreatePayload true "Daily task"
// @Success 201 {object} models.DailyTask
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /daily-tasks [post]
func (h *DailyTaskHandler) CreateDailyTask(c *fiber.Ctx) error {
	var payload models.DailyTaskCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	employeeID, err := primitive.ObjectIDFromHex(payload.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID format"})
	}

	approvalStatus := payload.ApprovalStatus
	if approvalStatus == "" {
		approvalStatus = "pending"
	}

	task := &models.DailyTask{
		EmployeeID:     employeeID,
		Date:           payload.Date,
		Project:        payload.Project,
		WorkingTime:    payload.WorkingTime,
		TaskDone:       payload.TaskDone,
		ResearchDone:   payload.ResearchDone,
		ApprovalStatus: approvalStatus,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.dailyTaskRepo.Create(ctx, task); err != nil {
		log.Printf("ERROR: create daily task: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create daily task"})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateDailyTask godoc
// @Summary Update a daily task log
// @Tags DailyTasks
// @Accept json
// @Produce json
// @Param id query string true "Daily task ID"
// @Param payload body models.DailyTaskUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /daily-tasks [put]
func (h *DailyTaskHandler) UpdateDailyTask(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid daily task ID format"})
	}

	var payload models.DailyTaskUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	update := bson.M{}
	if payload.Date != "" {
		update["date"] = payload.Date
	}
	if payload.Project != "" {
		update["project"] = payload.Project
	}
	if payload.WorkingTime != "" {
		update["workingTime"] = payload.WorkingTime
	}
	if payload.TaskDone != nil {
		update["taskDone"] = *payload.TaskDone
	}
	if payload.ResearchDone != nil {
		update["researchDone"] = *payload.ResearchDone
	}
	if payload.ApprovalStatus != "" {
		update["approvalStatus"] = payload.ApprovalStatus
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.dailyTaskRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update daily task %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update daily task"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Daily task not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Daily task updated successfully"})
}

// DeleteDailyTask godoc
// @Summary Delete a daily task log
// @Tags DailyTasks
// @Produce json
// @Param id query string true "Daily task ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /daily-tasks [delete]
func (h *DailyTaskHandler) DeleteDailyTask(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid daily task ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.dailyTaskRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete daily task %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete daily task"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Daily task not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Daily task deleted successfully"})
}

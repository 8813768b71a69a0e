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

type TaskHandler struct {
	taskRepo repository.TaskRepository
}

func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// GetTasks godoc
// @Summary List tasks or fetch one by id
// @Tags Tasks
// @Produce json
// @Param id query string false "Task ID"
// @Success 200 {array} models.Task
// @Failure 404 {object} object{error=string}
// @Router /tasks [get]
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID format"})
		}
		task, err := h.taskRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find task %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch task"})
		}
		if task == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(fiber.StatusOK).JSON(task)
	}

	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		log.Printf("ERROR: list tasks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

// CreateTask godoc
// @Summary Create a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body models.TaskCreatePayload true "Task"
// @Success 201 {object} models.Task
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var payload models.TaskCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	status := payload.Status
	if status == "" {
		status = "todo"
	}
	priority := payload.Priority
	if priority == "" {
		priority = "medium"
	}

	task := &models.Task{
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    priority,
		Status:      status,
		Assignee:    payload.Assignee,
		DueDate:     payload.DueDate,
		Tags:        payload.Tags,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.taskRepo.Create(ctx, task); err != nil {
		log.Printf("ERROR: create task: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id query string true "Task ID"
// @Param payload body models.TaskUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /tasks [put]
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID format"})
	}

	var payload models.TaskUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	update := bson.M{}
	if payload.Title != "" {
		update["title"] = payload.Title
	}
	if payload.Description != nil {
		update["description"] = *payload.Description
	}
	if payload.Priority != "" {
		update["priority"] = payload.Priority
	}
	if payload.Status != "" {
		update["status"] = payload.Status
	}
	if payload.Assignee != nil {
		update["assignee"] = *payload.Assignee
	}
	if payload.DueDate != "" {
		update["dueDate"] = payload.DueDate
	}
	if payload.Tags != nil {
		update["tags"] = payload.Tags
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.taskRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update task %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Task updated successfully"})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags Tasks
// @Produce json
// @Param id query string true "Task ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /tasks [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.taskRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete task %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Task deleted successfully"})
}

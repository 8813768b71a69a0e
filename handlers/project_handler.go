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

type ProjectHandler struct {
	projectRepo repository.ProjectRepository
}

func NewProjectHandler(projectRepo repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

// GetProjects godoc
// @Summary List projects or fetch one by id
// @Tags Projects
// @Produce json
// @Param id query string false "Project ID"
// @Success 200 {array} models.Project
// @Failure 404 {object} object{error=string}
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID format"})
		}
		project, err := h.projectRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find project %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch project"})
		}
		if project == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusOK).JSON(project)
	}

	projects, err := h.projectRepo.FindAll(ctx)
	if err != nil {
		log.Printf("ERROR: list projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.Status(fiber.StatusOK).JSON(projects)
}

// CreateProject godoc
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param payload body models.ProjectCreatePayload true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var payload models.ProjectCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	status := payload.Status
	if status == "" {
		status = "planning"
	}

	project := &models.Project{
		Name:        payload.Name,
		Description: payload.Description,
		Progress:    payload.Progress,
		Status:      status,
		Priority:    payload.Priority,
		Deadline:    payload.Deadline,
		Team:        payload.Team,
		Tasks:       payload.Tasks,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.projectRepo.Create(ctx, project); err != nil {
		log.Printf("ERROR: create project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id query string true "Project ID"
// @Param payload body models.ProjectUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /projects [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID format"})
	}

	var payload models.ProjectUpdatePayload
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
	if payload.Description != nil {
		update["description"] = *payload.Description
	}
	if payload.Progress != nil {
		update["progress"] = *payload.Progress
	}
	if payload.Status != "" {
		update["status"] = payload.Status
	}
	if payload.Priority != "" {
		update["priority"] = payload.Priority
	}
	if payload.Deadline != "" {
		update["deadline"] = payload.Deadline
	}
	if payload.Team != nil {
		update["team"] = payload.Team
	}
	if payload.Tasks != nil {
		update["tasks"] = *payload.Tasks
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.projectRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update project %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Project updated successfully"})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags Projects
// @Produce json
// @Param id query string true "Project ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /projects [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.projectRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete project %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete project"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Project deleted successfully"})
}

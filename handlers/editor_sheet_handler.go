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

type EditorSheetHandler struct {
	sheetRepo repository.EditorSheetRepository
}

func NewEditorSheetHandler(sheetRepo repository.EditorSheetRepository) *EditorSheetHandler {
	return &EditorSheetHandler{sheetRepo: sheetRepo}
}

// GetEditorSheets godoc
// @Summary List editor sheets with employee names joined, or fetch one by id
// @Tags EditorSheets
// @Produce json
// @Param id query string false "Sheet ID"
// @Success 200 {array} models.EditorSheetWithEmployee
// @Failure 404 {object} object{error=string}
// @Router /editor-sheets [get]
func (h *EditorSheetHandler) GetEditorSheets(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if idParam := c.Query("id"); idParam != "" {
		objID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sheet ID format"})
		}
		sheet, err := h.sheetRepo.FindByID(ctx, objID)
		if err != nil {
			log.Printf("ERROR: find editor sheet %s: %v", idParam, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch editor sheet"})
		}
		if sheet == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Editor sheet not found"})
		}
		return c.Status(fiber.StatusOK).JSON(sheet)
	}

	sheets, err := h.sheetRepo.FindAllWithEmployee(ctx)
	if err != nil {
		log.Printf("ERROR: list editor sheets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch editor sheets"})
	}
	return c.Status(fiber.StatusOK).JSON(sheets)
}

// CreateEditorSheet godoc
// @Summary Create an editor sheet
// @Tags EditorSheets
// @Accept json
// @Produce json
// @Param payload body models.EditorSheetCreatePayload true "Sheet"
// @Success 201 {object} models.EditorSheet
// @Failure 400 {object} object{errors=[]util.ErrorResponse}
// @Router /editor-sheets [post]
func (h *EditorSheetHandler) CreateEditorSheet(c *fiber.Ctx) error {
	var payload models.EditorSheetCreatePayload
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

	sheet := &models.EditorSheet{
		EmployeeID: employeeID,
		Title:      payload.Title,
		SheetName:  payload.SheetName,
		Link:       payload.Link,
		Content:    payload.Content,
		Author:     payload.Author,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.sheetRepo.Create(ctx, sheet); err != nil {
		log.Printf("ERROR: create editor sheet: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create editor sheet"})
	}

	return c.Status(fiber.StatusCreated).JSON(sheet)
}

// UpdateEditorSheet godoc
// @Summary Update an editor sheet
// @Tags EditorSheets
// @Accept json
// @Produce json
// @Param id query string true "Sheet ID"
// @Param payload body models.EditorSheetUpdatePayload true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /editor-sheets [put]
func (h *EditorSheetHandler) UpdateEditorSheet(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sheet ID format"})
	}

	var payload models.EditorSheetUpdatePayload
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
	if payload.SheetName != "" {
		update["sheetName"] = payload.SheetName
	}
	if payload.Link != "" {
		update["link"] = payload.Link
	}
	if payload.Content != "" {
		update["content"] = payload.Content
	}
	if payload.Author != "" {
		update["author"] = payload.Author
	}

	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.sheetRepo.Update(ctx, objID, update)
	if err != nil {
		log.Printf("ERROR: update editor sheet %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update editor sheet"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Editor sheet not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Editor sheet updated successfully"})
}

// DeleteEditorSheet godoc
// @Summary Delete an editor sheet
// @Tags EditorSheets
// @Produce json
// @Param id query string true "Sheet ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /editor-sheets [delete]
func (h *EditorSheetHandler) DeleteEditorSheet(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sheet ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.sheetRepo.Delete(ctx, objID)
	if err != nil {
		log.Printf("ERROR: delete editor sheet %s: %v", objID.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete editor sheet"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Editor sheet not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Editor sheet deleted successfully"})
}

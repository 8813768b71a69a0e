package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"office-management-backend/seeder"
)

type SeedHandler struct {
	seeder *seeder.Seeder
}

func NewSeedHandler(s *seeder.Seeder) *SeedHandler {
	return &SeedHandler{seeder: s}
}

// SeedResource godoc
// @Summary Replace one collection with sample data
// @Tags Ops
// @Produce json
// @Security BearerAuth
// @Param resource path string true "employees, tasks, projects, invoices, attendance or leaves"
// @Success 200 {object} object{message=string,count=int}
// @Failure 400 {object} object{error=string}
// @Router /seed/{resource} [post]
func (h *SeedHandler) SeedResource(c *fiber.Ctx) error {
	resource := c.Params("resource")

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	count, err := h.seeder.Seed(ctx, resource)
	if err != nil {
		if errors.Is(err, seeder.ErrUnknownResource) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown seed resource"})
		}
		log.Printf("ERROR: seed %s: %v", resource, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to seed data"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Seeded " + resource,
		"count":   count,
	})
}

// SeedAll godoc
// @Summary Replace every collection with sample data
// @Tags Ops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,counts=map[string]int}
// @Router /seed/all [post]
func (h *SeedHandler) SeedAll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	counts, err := h.seeder.SeedAll(ctx)
	if err != nil {
		log.Printf("ERROR: seed all: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to seed data"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Seeded all collections",
		"counts":  counts,
	})
}

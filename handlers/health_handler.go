package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"office-management-backend/config"
)

type HealthHandler struct {
	db *config.Database
}

func NewHealthHandler(db *config.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Liveness check including a database ping
// @Tags Ops
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		log.Printf("ERROR: health check ping: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "Database unreachable",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

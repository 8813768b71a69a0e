package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"office-management-backend/models"
	"office-management-backend/pkg/paseto"
	"office-management-backend/pkg/password"
	util "office-management-backend/pkg/utils"
	"office-management-backend/repository"
)

type AuthHandler struct {
	userRepo   repository.UserRepository
	tokenMaker *paseto.Maker
}

func NewAuthHandler(userRepo repository.UserRepository, tokenMaker *paseto.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		tokenMaker: tokenMaker,
	}
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password, returns the user and a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginPayload true "Credentials"
// @Success 200 {object} object{success=bool,user=models.User,token=string}
// @Failure 400 {object} object{error=string} "Missing or malformed fields"
// @Failure 401 {object} object{error=string} "Invalid email or password"
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		log.Printf("ERROR: login lookup for %s: %v", payload.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	// Unknown email and wrong password return the same message.
	if user == nil || !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	// The maker is nil when the server runs without a PASETO secret; the
	// client then relies on the returned user object alone.
	var token string
	if h.tokenMaker != nil {
		token, err = h.tokenMaker.GenerateToken(user)
		if err != nil {
			log.Printf("ERROR: token generation for %s: %v", user.ID.Hex(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
		}
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

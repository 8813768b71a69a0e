package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"office-management-backend/config"
	_ "office-management-backend/docs"
	"office-management-backend/pkg/paseto"
	"office-management-backend/router"

	_ "time/tzdata"
)

// @title Office Management API
// @version 1.0
// @description REST backend for the office management dashboard: employees, attendance, leaves, projects, tasks, invoices and reports.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:4000
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /api/login.
func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(context.Background())

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}

	tokenMaker, err := paseto.NewMaker(cfg.PasetoSecret)
	if err != nil {
		if cfg.AuthRequired {
			log.Fatalf("AUTH_REQUIRED is set but the token maker could not start: %v", err)
		}
		log.Printf("Warning: running without token support: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "office-management-backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	config.SetupCORS(app)

	router.SetupRoutes(app, db, cfg, tokenMaker)

	log.Printf("Server running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

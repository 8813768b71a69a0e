package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	MongoURI     string
	DBName       string
	PasetoSecret string
	AuthRequired bool
}

// LoadConfig reads configuration from the environment, with .env as a fallback
// for local development.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded (expected in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 != "" {
		secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
		if err != nil {
			log.Fatalf("PASETO_SECRET is not valid Base64 URL-encoded data: %v", err)
		}
		if len(secretBytes) != 32 {
			log.Fatalf("PASETO_SECRET must decode to exactly 32 bytes, got %d", len(secretBytes))
		}
	}

	return &AppConfig{
		Port:         getEnv("PORT", "4000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "office_management"),
		PasetoSecret: secretBase64,
		AuthRequired: getEnv("AUTH_REQUIRED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

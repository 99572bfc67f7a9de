package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Config struct {
	DBURL       string
	Port        string
	JWTSecret   string
	JWTExpiry   time.Duration
	Environment string
	CorsConfig  cors.Options
}

// Load builds the process configuration from the environment, optionally
// seeded from a .env file. JWT_SECRET and DB_URL are required; missing either
// is a startup error.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// Absence of the file is fine, real deployments set env vars directly.
	_ = godotenv.Load(envFile)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	return &Config{
		DBURL:       dbURL,
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   secret,
		JWTExpiry:   time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 168)) * time.Hour,
		Environment: getEnv("ENV", "development"),
		CorsConfig:  CorsConfig(),
	}, nil
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}

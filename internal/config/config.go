package config

import (
	"log/slog"
	"os"
)

const devSecret = "dev-secret-change-in-production"

type Config struct {
	Port          string
	Env           string
	DataDir       string
	JWTSecret     string
	SeedAdminPass string
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		DataDir:       getEnv("DATA_DIR", "data"),
		JWTSecret:     getEnv("JWT_SECRET", devSecret),
		SeedAdminPass: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package config resolves process-level settings from the environment.
// main loads an optional .env file before calling Load, so local overrides
// work without exporting anything.
package config

import (
	"os"
	"strings"
)

// Config holds everything the process needs to wire itself up.
type Config struct {
	Addr        string
	DBPath      string
	DatabaseURL string
	StaticDir   string
	AIBaseURL   string
	AIAPIKey    string
	AIModel     string
	CORSOrigins []string
}

// Load reads the configuration from environment variables, applying
// defaults where sensible. DATABASE_URL switches the backend to PostgreSQL;
// an empty AI_API_URL disables summarization.
func Load() Config {
	return Config{
		Addr:        EnvOrDefault("TASKEDGE_ADDR", ":8080"),
		DBPath:      EnvOrDefault("TASKEDGE_DB_PATH", "data/taskedge.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StaticDir:   EnvOrDefault("TASKEDGE_STATIC_DIR", "web/dist"),
		AIBaseURL:   os.Getenv("AI_API_URL"),
		AIAPIKey:    os.Getenv("AI_API_KEY"),
		AIModel:     os.Getenv("AI_MODEL"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// EnvOrDefault returns the environment variable value or fallback when it is empty.
func EnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// splitOrigins parses a comma-separated origin list, permitting any origin
// when the variable is unset.
func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

package config

import (
	"fmt"
	"os"
)

// Config holds everything the service reads from the environment. It is
// built once in main and passed explicitly to whoever needs it.
type Config struct {
	Port      string
	URLDeploy string

	GeminiAPIKey string
	GeminiModel  string

	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
}

// Load reads the environment. GEMINI_API_KEY and the POSTGRES_* credentials
// are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		URLDeploy: getEnv("URL_DEPLOY", "http://localhost:3000"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
	}

	for _, req := range []struct{ key, val string }{
		{"GEMINI_API_KEY", cfg.GeminiAPIKey},
		{"POSTGRES_USER", cfg.PostgresUser},
		{"POSTGRES_PASSWORD", cfg.PostgresPassword},
		{"POSTGRES_HOST", cfg.PostgresHost},
		{"POSTGRES_DB", cfg.PostgresDB},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("missing required env %s", req.key)
		}
	}

	return cfg, nil
}

// DatabaseURL assembles the Postgres connection string from the discrete
// credential values.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// ImageURL builds the public link for a stored measure image.
func (c *Config) ImageURL(id string) string {
	return fmt.Sprintf("%s/image/%s", c.URLDeploy, id)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

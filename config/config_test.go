package config_test

import (
	"testing"

	"github.com/Kaduh15/api-consumption-measurement/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "measures")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.URLDeploy != "http://localhost:3000" {
		t.Errorf("URLDeploy = %q", cfg.URLDeploy)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if got := cfg.DatabaseURL(); got != "postgres://app:secret@db:5432/measures" {
		t.Errorf("DatabaseURL = %q", got)
	}
	if got := cfg.ImageURL("abc"); got != "http://localhost:3000/image/abc" {
		t.Errorf("ImageURL = %q", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing GEMINI_API_KEY")
	}
}

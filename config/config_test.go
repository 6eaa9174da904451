package config_test

import (
	"testing"
	"time"

	"employee-task-service/config"
)

func TestMustLoadFromEnv(t *testing.T) {
	t.Setenv("DB_ADDRESS", "postgres://localhost:5432/test")
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg := config.MustLoad("")

	if cfg.DBAddress != "postgres://localhost:5432/test" {
		t.Fatalf("unexpected db address: %q", cfg.DBAddress)
	}
	if cfg.Auth.Secret != "test-secret" {
		t.Fatalf("unexpected auth secret: %q", cfg.Auth.Secret)
	}
	if cfg.HTTP.Address != ":9090" {
		t.Fatalf("unexpected http address: %q", cfg.HTTP.Address)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Fatalf("expected default timeout 5s, got %s", cfg.HTTP.Timeout)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("expected default token ttl 30m, got %s", cfg.Auth.TokenTTL)
	}
}

func TestMustLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DB_ADDRESS", "postgres://localhost:5432/test")
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg := config.MustLoad("does-not-exist.yaml")

	if cfg.DBAddress != "postgres://localhost:5432/test" {
		t.Fatalf("unexpected db address: %q", cfg.DBAddress)
	}
}

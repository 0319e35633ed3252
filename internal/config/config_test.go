package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %s", cfg.HTTPAddr)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Fatalf("unexpected JWTExpiry: %v", cfg.JWTExpiry)
	}
	if cfg.StorageBackend != "local" {
		t.Fatalf("unexpected StorageBackend: %s", cfg.StorageBackend)
	}
	if len(cfg.AdminPasswordHash) == 0 {
		t.Fatalf("expected admin password hash to be computed")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "ops")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("JWT_EXPIRY_MINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AdminUsername != "ops" {
		t.Fatalf("unexpected AdminUsername: %s", cfg.AdminUsername)
	}
	if cfg.JWTExpiry != 15*time.Minute {
		t.Fatalf("unexpected JWTExpiry: %v", cfg.JWTExpiry)
	}
}

func TestCheckAdminCredentials(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		if !cfg.CheckAdminCredentials("admin", "s3cret") {
			t.Fatalf("expected valid credentials to pass")
		}
	})
	t.Run("wrong password", func(t *testing.T) {
		if cfg.CheckAdminCredentials("admin", "nope") {
			t.Fatalf("expected wrong password to fail")
		}
	})
	t.Run("wrong username", func(t *testing.T) {
		if cfg.CheckAdminCredentials("root", "s3cret") {
			t.Fatalf("expected wrong username to fail")
		}
	})
}

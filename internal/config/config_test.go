package config

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DB_MAX_OPEN_CONNS", "")
		t.Setenv("BCRYPT_COST", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected default port 8080, got %s", cfg.Port)
		}
		if cfg.DBMaxOpenConns != 25 {
			t.Errorf("expected 25 max open conns, got %d", cfg.DBMaxOpenConns)
		}
		if cfg.BcryptCost != bcrypt.DefaultCost {
			t.Errorf("expected default bcrypt cost, got %d", cfg.BcryptCost)
		}
		if cfg.MigrationsPath != "file://migrations" {
			t.Errorf("unexpected migrations path %s", cfg.MigrationsPath)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_MAX_OPEN_CONNS", "5")
		t.Setenv("BCRYPT_COST", "4")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %s", cfg.Port)
		}
		if cfg.DBMaxOpenConns != 5 {
			t.Errorf("expected 5 max open conns, got %d", cfg.DBMaxOpenConns)
		}
		if cfg.BcryptCost != 4 {
			t.Errorf("expected bcrypt cost 4, got %d", cfg.BcryptCost)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "lots")
		t.Setenv("BCRYPT_COST", "99")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBMaxOpenConns != 25 {
			t.Errorf("expected fallback 25, got %d", cfg.DBMaxOpenConns)
		}
		if cfg.BcryptCost != bcrypt.DefaultCost {
			t.Errorf("expected fallback bcrypt cost, got %d", cfg.BcryptCost)
		}
	})
}

package main

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.DatabaseDriver != "sqlite3" {
		t.Fatalf("DatabaseDriver = %q", cfg.DatabaseDriver)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.DatabaseDriver != "mysql" {
		t.Fatalf("env not honoured: %+v", cfg)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("BcryptCost = %d", cfg.BcryptCost)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid TOKEN_TTL")
	}
	t.Setenv("TOKEN_TTL", "1h")

	t.Setenv("BCRYPT_COST", "99")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for out-of-range BCRYPT_COST")
	}
}

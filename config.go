package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// defaultJWTSecret is used when JWT_SECRET is not set. main() warns loudly
// when it is in effect.
const defaultJWTSecret = "change-me-in-production"

// Config carries everything the process needs, populated from the
// environment. A .env file is honoured when present; real environment
// variables win.
type Config struct {
	Addr            string
	DatabaseDriver  string
	DatabaseURL     string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfig reads the environment with sensible defaults. SQLite on a
// local file is the default backend, so the service runs with no setup.
func LoadConfig() (Config, error) {
	cfg := Config{
		Addr:           envOr("ADDR", ":8080"),
		DatabaseDriver: envOr("DATABASE_DRIVER", "sqlite3"),
		DatabaseURL:    envOr("DATABASE_URL", "./todo.db"),
		JWTSecret:      envOr("JWT_SECRET", defaultJWTSecret),
	}

	var err error
	if cfg.TokenTTL, err = envDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = envInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return Config{}, err
	}
	if cfg.MaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return Config{}, err
	}
	if cfg.MaxIdleConns, err = envInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxLifetime, err = envDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("config: BCRYPT_COST %d out of range [%d, %d]",
			cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MusfirahBW/to-do-task-manager/internal/store"
)

func main() {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET is not set; tokens are signed with an insecure default")
	}

	st, err := store.Open(store.Config{
		Driver:          cfg.DatabaseDriver,
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("opening database failed", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.EnsureSchema(ctx); err != nil {
		slog.Error("applying schema failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "driver", cfg.DatabaseDriver)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	Route(e, NewHandler(st, cfg), []byte(cfg.JWTSecret))

	slog.Info("starting server", "addr", cfg.Addr)
	if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

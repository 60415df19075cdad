// Package store is the persistence layer: plain database/sql with explicit
// queries, no ORM. It supports SQLite (default, also used by tests) and
// MySQL, and translates driver-specific failures into the sentinel errors
// declared in errors.go.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds the connection options for Open.
type Config struct {
	// Driver is "sqlite3" or "mysql".
	Driver string

	// DSN is the driver-specific data source name.
	DSN string

	// Pool settings. Zero values leave the database/sql defaults in place.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store wraps a *sql.DB handle. All methods take a context so callers
// control timeouts and cancellation.
type Store struct {
	db     *sql.DB
	driver string
}

// Open opens the database described by cfg and verifies connectivity.
// Callers own the handle and must Close it on shutdown.
func Open(cfg Config) (*Store, error) {
	switch cfg.Driver {
	case "sqlite3", "mysql":
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", cfg.Driver)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("store: DSN must not be empty")
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// An in-memory SQLite database exists per connection; keep the pool on
	// a single connection so every query sees the same database.
	if cfg.Driver == "sqlite3" && strings.Contains(cfg.DSN, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{db: db, driver: cfg.Driver}, nil
}

// Close releases all pooled connections.
func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database is still reachable.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

var schemas = map[string][]string{
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			owner_id    INTEGER NOT NULL REFERENCES users(id)
		)`,
	},
	"mysql": {
		`CREATE TABLE IF NOT EXISTS users (
			id            INT AUTO_INCREMENT PRIMARY KEY,
			username      VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id          INT AUTO_INCREMENT PRIMARY KEY,
			title       VARCHAR(255) NOT NULL DEFAULT '',
			description VARCHAR(1000) NOT NULL DEFAULT '',
			owner_id    INT NOT NULL,
			FOREIGN KEY (owner_id) REFERENCES users(id)
		)`,
	},
}

// EnsureSchema creates the users and tasks tables when they do not exist
// yet. Production deployments version their schema through cmd/migrate;
// this keeps first runs and tests self-contained.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemas[s.driver] {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: ensure schema: %w", err)
		}
	}
	return nil
}

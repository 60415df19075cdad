package store

import (
	"context"
	"fmt"

	"github.com/MusfirahBW/to-do-task-manager/internal/models"
)

// CreateUser inserts a new account and returns it with the assigned id.
// Uniqueness is left to the UNIQUE constraint on username: a pre-read would
// race with concurrent signups, the constraint cannot. A violation surfaces
// as ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		username, passwordHash)
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: user id: %w", err)
	}
	return &models.User{ID: int(id), Username: username, PasswordHash: passwordHash}, nil
}

// UserByUsername returns the account with the given username, or
// ErrNotFound when no such account exists.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM users WHERE username = ?`,
		username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

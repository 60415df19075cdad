package store

import (
	"context"
	"fmt"

	"github.com/MusfirahBW/to-do-task-manager/internal/models"
)

// Every task lookup filters by both id and owner_id in one query. A task
// belonging to someone else is indistinguishable from a task that does not
// exist: both are ErrNotFound.

// CreateTask persists a new task owned by ownerID. The title is stored as
// given; an empty title is allowed.
func (s *Store) CreateTask(ctx context.Context, ownerID int, title, description string) (*models.Task, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, owner_id) VALUES (?, ?, ?)`,
		title, description, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: task id: %w", err)
	}
	return &models.Task{ID: int(id), Title: title, Description: description, OwnerID: ownerID}, nil
}

// TasksByOwner returns every task owned by ownerID. The result is an empty
// slice, not nil, when the owner has no tasks. Order is unspecified.
func (s *Store) TasksByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, owner_id FROM tasks WHERE owner_id = ?`,
		ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("store: scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// TaskByID returns the task with the given id if ownerID owns it.
func (s *Store) TaskByID(ctx context.Context, ownerID, id int) (*models.Task, error) {
	var t models.Task
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, owner_id FROM tasks WHERE id = ? AND owner_id = ?`,
		id, ownerID).Scan(&t.ID, &t.Title, &t.Description, &t.OwnerID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// UpdateTask applies a partial update to an owned task. Nil fields are left
// unchanged. The current row is read first (owner-scoped), so a foreign or
// missing task fails before anything is written.
func (s *Store) UpdateTask(ctx context.Context, ownerID, id int, title, description *string) (*models.Task, error) {
	t, err := s.TaskByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		t.Title = *title
	}
	if description != nil {
		t.Description = *description
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ? WHERE id = ? AND owner_id = ?`,
		t.Title, t.Description, id, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	return t, nil
}

// DeleteTask removes an owned task permanently. ErrNotFound when the task
// does not exist or belongs to another user.
func (s *Store) DeleteTask(ctx context.Context, ownerID, id int) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND owner_id = ?`,
		id, ownerID)
	if err != nil {
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MusfirahBW/to-do-task-manager/internal/store"
)

func seedUser(t *testing.T, s *store.Store, username string) int {
	t.Helper()
	u, err := s.CreateUser(context.Background(), username, "hash")
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return u.ID
}

func TestCreateAndGetTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "alice")

	created, err := s.CreateTask(ctx, owner, "Buy milk", "2 litres")
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := s.TaskByID(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != "Buy milk" || got.Description != "2 litres" || got.OwnerID != owner {
		t.Fatalf("unexpected task %+v", got)
	}
}

func TestCreateTask_EmptyTitleAllowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "alice")

	created, err := s.CreateTask(ctx, owner, "", "")
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := s.TaskByID(ctx, owner, created.ID); err != nil {
		t.Fatalf("get task: %v", err)
	}
}

func TestTasksByOwner_Scoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	if _, err := s.CreateTask(ctx, alice, "a1", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateTask(ctx, alice, "a2", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateTask(ctx, bob, "b1", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := s.TasksByOwner(ctx, alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for alice, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.OwnerID != alice {
			t.Fatalf("task %d owned by %d, not alice", task.ID, task.OwnerID)
		}
	}
}

func TestTasksByOwner_EmptyIsNotNil(t *testing.T) {
	s := newTestStore(t)
	owner := seedUser(t, s, "alice")

	tasks, err := s.TasksByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestTaskByID_ForeignOwnerIndistinguishable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	created, err := s.CreateTask(ctx, alice, "secret", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, errForeign := s.TaskByID(ctx, bob, created.ID)
	_, errMissing := s.TaskByID(ctx, bob, 99999)
	if !errors.Is(errForeign, store.ErrNotFound) {
		t.Fatalf("foreign task: expected ErrNotFound, got %v", errForeign)
	}
	if !errors.Is(errMissing, store.ErrNotFound) {
		t.Fatalf("missing task: expected ErrNotFound, got %v", errMissing)
	}
}

func TestUpdateTask_Partial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "alice")

	created, err := s.CreateTask(ctx, owner, "original", "before")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	desc := "after"
	updated, err := s.UpdateTask(ctx, owner, created.ID, nil, &desc)
	if err != nil {
		t.Fatalf("update description: %v", err)
	}
	if updated.Title != "original" {
		t.Fatalf("title changed to %q", updated.Title)
	}
	if updated.Description != "after" {
		t.Fatalf("description is %q", updated.Description)
	}

	title := "renamed"
	updated, err = s.UpdateTask(ctx, owner, created.ID, &title, nil)
	if err != nil {
		t.Fatalf("update title: %v", err)
	}
	if updated.Title != "renamed" || updated.Description != "after" {
		t.Fatalf("unexpected task %+v", updated)
	}

	// No fields set leaves the row untouched.
	same, err := s.UpdateTask(ctx, owner, created.ID, nil, nil)
	if err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if same.Title != "renamed" || same.Description != "after" {
		t.Fatalf("no-op update changed task %+v", same)
	}
}

func TestUpdateTask_ForeignOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	created, err := s.CreateTask(ctx, alice, "mine", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "stolen"
	if _, err := s.UpdateTask(ctx, bob, created.ID, &title, nil); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Alice's task must be untouched.
	got, err := s.TaskByID(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "mine" {
		t.Fatalf("task title changed to %q", got.Title)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "alice")

	created, err := s.CreateTask(ctx, owner, "gone soon", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteTask(ctx, owner, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.TaskByID(ctx, owner, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again reports not found; the first delete was final.
	if err := s.DeleteTask(ctx, owner, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteTask_ForeignOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	created, err := s.CreateTask(ctx, alice, "keep", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteTask(ctx, bob, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.TaskByID(ctx, alice, created.ID); err != nil {
		t.Fatalf("alice's task should survive: %v", err)
	}
}

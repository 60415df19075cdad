package models

// Task is a to-do item owned by exactly one user. Ownership is immutable;
// there is no route that reassigns a task.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int    `json:"-"`
}

package main

// CredentialsDTO is the body of both /auth/signup and /auth/login.
type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTaskDTO for creating a new task. Title is intentionally not
// validated; the service stores whatever the client sent.
type CreateTaskDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskDTO for partially updating a task. Pointer fields distinguish
// "omitted" from "set to empty": nil fields are left unchanged.
type UpdateTaskDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

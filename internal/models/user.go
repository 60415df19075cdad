package models

// User represents a registered account. The password hash never leaves the
// server, so only Task rows carry json tags.
type User struct {
	ID           int
	Username     string
	PasswordHash string
}

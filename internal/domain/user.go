package domain

import (
	"strings"
	"time"
)

// User is a team member who can sign in. Email is the primary key and is
// always stored lowercased.
type User struct {
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the verified caller of a request, taken from a live session.
type Identity struct {
	Email string
	Name  string
}

// DefaultUserName derives a display name from the local part of an email.
func DefaultUserName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

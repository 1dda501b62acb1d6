package domain

import (
	"errors"
	"strings"
)

// Role classifies what a signed-in user may reach in the app.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// The single account with administrative access. Matching is exact,
// case-insensitive on the email only; the password is never checked.
const (
	AdminEmail = "dionathanma@hotmail.com"
	AdminName  = "Dionathan"
)

var ErrSignInFailed = errors.New("sign in failed")
var ErrAccessDenied = errors.New("access denied")
var ErrMissingFields = errors.New("all required fields must be filled")
var ErrPasswordMismatch = errors.New("passwords do not match")

// Identity is the in-memory record of the currently signed-in user.
// At most one identity is active per session slot; it is never persisted.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdminEmail reports whether email matches the fixed admin address.
func IsAdminEmail(email string) bool {
	return strings.ToLower(email) == AdminEmail
}

// DisplayName derives the name shown for a non-admin identity: the local
// part of the email, or the whole string when no '@' is present.
func DisplayName(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

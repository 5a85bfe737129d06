package models

import "strings"

// RoleType represents a user's role in the system
type RoleType string

const (
	// RoleAdmin can manage items, vendors and global limits
	RoleAdmin RoleType = "admin"
	// RoleStudent is the default role for signed-up pantry users
	RoleStudent RoleType = "student"
)

// User status values as stored on transactions (always lower-cased)
const (
	StatusUndergraduate = "undergraduate"
	StatusGraduate      = "graduate"
)

// NormalizeStatus lower-cases and trims a user status so aggregate queries
// can group case-insensitively without re-normalizing.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

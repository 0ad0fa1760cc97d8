package model

import "time"

// Role names. Every actor holds exactly one role.
const (
	RolePatient   = "patient"
	RoleCaretaker = "caretaker"
	RoleDoctor    = "doctor"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RolePatient, RoleCaretaker, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Actor represents a user of the system: a patient, a caretaker, a doctor
// or an administrator.
type Actor struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     *string   `json:"full_name,omitempty"`
	PasswordHash *string   `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

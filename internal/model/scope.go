package model

// Scope carries the authenticated caller's identity through every usecase.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // patient, caretaker, doctor or admin
}

// IsAdmin checks if the scope has the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsDoctor checks if the scope has the doctor role.
func (s Scope) IsDoctor() bool {
	return s.Role == RoleDoctor
}

// IsCaretaker checks if the scope has the caretaker role.
func (s Scope) IsCaretaker() bool {
	return s.Role == RoleCaretaker
}

// IsPatient checks if the scope has the patient role.
func (s Scope) IsPatient() bool {
	return s.Role == RolePatient
}

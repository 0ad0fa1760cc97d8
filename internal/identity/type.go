package identity

import "vitalguard-api/internal/model"

type RegisterInput struct {
	Username string
	Password string
	FullName string
	Role     string
}

type LoginInput struct {
	Username string
	Password string
}

type SessionOutput struct {
	Actor model.Actor
	Token string
}

type AssignPatientInput struct {
	CaregiverID string
	PatientID   string
}

package identity

import (
	"context"

	"vitalguard-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates a new actor and returns a session token.
	Register(ctx context.Context, ip RegisterInput) (SessionOutput, error)

	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, ip LoginInput) (SessionOutput, error)

	// AssignPatient links a patient to a caretaker or doctor. Gated on the
	// manage-patients capability.
	AssignPatient(ctx context.Context, sc model.Scope, ip AssignPatientInput) error

	// Detail returns one actor by id.
	Detail(ctx context.Context, sc model.Scope, id string) (model.Actor, error)
}

package repository

import (
	"context"

	"vitalguard-api/internal/model"
)

//go:generate mockery --name Repository
// Repository stores actors and patient assignments. It doubles as the
// access guard's ActorProvider.
type Repository interface {
	CreateActor(ctx context.Context, opts CreateActorOptions) (model.Actor, error)
	GetByID(ctx context.Context, id string) (model.Actor, error)
	GetByUsername(ctx context.Context, username string) (model.Actor, error)

	// Assign links a patient to a caregiver (caretaker or doctor).
	// Idempotent.
	Assign(ctx context.Context, caregiverID, patientID string) error

	// Assigned reports whether the patient is assigned to the actor.
	Assigned(ctx context.Context, actorID, patientID string) (bool, error)

	// RoleOf returns the actor's role, or empty when the actor is unknown.
	RoleOf(ctx context.Context, actorID string) (string, error)
}

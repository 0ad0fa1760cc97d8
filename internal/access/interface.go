package access

import "context"

//go:generate mockery --name Guard
// Guard gates which patients an actor may observe or act on.
type Guard interface {
	// CanAccess reports whether the actor may exercise cap against the
	// given patient. Self-access is always evaluated against the actor's
	// own capability table; admin bypasses the relationship check.
	CanAccess(ctx context.Context, actorID, patientID string, cap Capability) (bool, error)
}

// ActorProvider supplies roles and patient assignments to the guard. The
// identity repository implements it.
type ActorProvider interface {
	// RoleOf returns the actor's role, or empty when the actor is unknown.
	RoleOf(ctx context.Context, actorID string) (string, error)

	// Assigned reports whether the patient is assigned to the actor.
	Assigned(ctx context.Context, actorID, patientID string) (bool, error)
}

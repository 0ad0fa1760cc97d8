package access

import (
	"context"

	"vitalguard-api/internal/model"
	pkgLog "vitalguard-api/pkg/log"
)

type implGuard struct {
	l        pkgLog.Logger
	provider ActorProvider
}

func New(l pkgLog.Logger, provider ActorProvider) Guard {
	return &implGuard{
		l:        l,
		provider: provider,
	}
}

func (g *implGuard) CanAccess(ctx context.Context, actorID, patientID string, cap Capability) (bool, error) {
	role, err := g.provider.RoleOf(ctx, actorID)
	if err != nil {
		g.l.Errorf(ctx, "internal.access.CanAccess.RoleOf: %v", err)
		return false, err
	}
	if role == "" {
		return false, nil
	}

	// Admin bypasses the relationship check entirely.
	if role == model.RoleAdmin {
		return true, nil
	}

	// Self-access: evaluated against the actor's own capability table.
	if actorID == patientID {
		return HasCapability(role, cap), nil
	}

	// Cross-patient access needs the capability itself plus a relationship:
	// an explicit assignment, or the view-all-patients capability.
	if !HasCapability(role, cap) {
		return false, nil
	}

	switch role {
	case model.RoleDoctor, model.RoleCaretaker:
		if HasCapability(role, CapViewAllPatients) {
			return true, nil
		}
		assigned, err := g.provider.Assigned(ctx, actorID, patientID)
		if err != nil {
			g.l.Errorf(ctx, "internal.access.CanAccess.Assigned: %v", err)
			return false, err
		}
		return assigned, nil
	default:
		// Patients hold no cross-patient capabilities.
		return false, nil
	}
}

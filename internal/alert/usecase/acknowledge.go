package usecase

import (
	"context"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
)

func (uc *usecase) Acknowledge(ctx context.Context, sc model.Scope, alertID string) (alert.AckOutput, error) {
	a, err := uc.repo.Get(ctx, alertID)
	if err != nil {
		if err == repository.ErrNotFound {
			return alert.AckOutput{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Acknowledge.Get: %v", err)
		return alert.AckOutput{}, err
	}

	allowed, err := uc.guard.CanAccess(ctx, sc.UserID, a.PatientID, access.CapAcknowledgeAlerts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Acknowledge.CanAccess: %v", err)
		return alert.AckOutput{}, err
	}
	if !allowed {
		return alert.AckOutput{}, alert.ErrPermissionDenied
	}

	acked, err := uc.repo.Acknowledge(ctx, alertID, sc.UserID)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return alert.AckOutput{}, alert.ErrAlertNotFound
		case repository.ErrAlreadyTerminal:
			// Benign: the confirmation timer or another caregiver won.
			return alert.AckOutput{Alert: acked, AlreadyResolved: true}, nil
		default:
			uc.l.Errorf(ctx, "internal.alert.usecase.Acknowledge.Acknowledge: %v", err)
			return alert.AckOutput{}, err
		}
	}

	uc.cancelWindow(alertID)

	ackedEvent := acked.Events[len(acked.Events)-1]
	uc.appendAudit(ctx, acked, ackedEvent)
	uc.notifyObservers(ctx, acked, ackedEvent)

	return alert.AckOutput{Alert: acked}, nil
}

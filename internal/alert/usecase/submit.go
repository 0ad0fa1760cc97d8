package usecase

import (
	"context"
	"time"

	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
)

func (uc *usecase) SubmitSignal(ctx context.Context, ip alert.SubmitSignalInput) (alert.SubmitSignalOutput, error) {
	if err := validateSignal(ip.Signal); err != nil {
		return alert.SubmitSignalOutput{}, err
	}

	draft := buildDraft(ip.Signal)
	if draft == nil {
		// Normal-level signal, nothing to raise.
		return alert.SubmitSignalOutput{}, nil
	}

	a, created, err := uc.repo.Create(ctx, repository.CreateOptions{Draft: *draft})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.SubmitSignal.Create: %v", err)
		return alert.SubmitSignalOutput{}, err
	}

	out := alert.SubmitSignalOutput{Alert: &a, Created: created}
	if a.RequiresConfirmation && a.Active() {
		remaining := uc.window - time.Since(a.CreatedAt)
		if remaining < 0 {
			remaining = 0
		}
		out.TimeRemaining = remaining
	}

	if created {
		createdEvent := a.Events[len(a.Events)-1]
		uc.appendAudit(ctx, a, createdEvent)
		uc.notifyObservers(ctx, a, createdEvent)

		if a.RequiresConfirmation {
			uc.armWindow(a.ID)
		}
	}

	return out, nil
}

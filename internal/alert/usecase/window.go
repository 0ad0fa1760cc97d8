package usecase

import (
	"context"

	"vitalguard-api/internal/model"
)

// armWindow starts the confirmation countdown for an alert. When it fires,
// the current store state decides: an alert acknowledged in the meantime is
// already terminal and the escalation no-ops on the store's guard.
func (uc *usecase) armWindow(alertID string) {
	uc.sched.Schedule(alertID, uc.window, func() {
		ctx := context.Background()
		out, err := uc.escalateAlert(ctx, alertID, "timeout", model.SystemTimeoutActor)
		if err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.window.expire: %v", err)
			return
		}
		if out.AlreadyResolved {
			uc.l.Debugf(ctx, "internal.alert.usecase.window.expire: alert %s already resolved", alertID)
		}
	})
}

// cancelWindow stops a pending countdown. A timer that already fired still
// no-ops against the store's terminal-state guard.
func (uc *usecase) cancelWindow(alertID string) {
	uc.sched.Cancel(alertID)
}

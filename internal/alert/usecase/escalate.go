package usecase

import (
	"context"
	"fmt"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
)

func (uc *usecase) ForceEscalate(ctx context.Context, sc model.Scope, ip alert.ForceEscalateInput) (alert.EscalateOutput, error) {
	a, err := uc.repo.Get(ctx, ip.AlertID)
	if err != nil {
		if err == repository.ErrNotFound {
			return alert.EscalateOutput{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.ForceEscalate.Get: %v", err)
		return alert.EscalateOutput{}, err
	}

	allowed, err := uc.guard.CanAccess(ctx, sc.UserID, a.PatientID, access.CapEscalateAlerts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ForceEscalate.CanAccess: %v", err)
		return alert.EscalateOutput{}, err
	}
	if !allowed {
		return alert.EscalateOutput{}, alert.ErrPermissionDenied
	}

	reason := ip.Reason
	if reason == "" {
		reason = "manual"
	}

	return uc.escalateAlert(ctx, ip.AlertID, reason, sc.UserID)
}

func (uc *usecase) ConfirmNoResponse(ctx context.Context, ip alert.ConfirmNoResponseInput) (alert.EscalateOutput, error) {
	if ip.PatientID == "" || !model.ValidSource(ip.Source) {
		return alert.EscalateOutput{}, alert.ErrInvalidSignal
	}

	active, err := uc.repo.ListActive(ctx, repository.ListActiveOptions{
		PatientID: ip.PatientID,
		Type:      model.AlertTypeEmergency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ConfirmNoResponse.ListActive: %v", err)
		return alert.EscalateOutput{}, err
	}
	if len(active) == 0 {
		return alert.EscalateOutput{}, alert.ErrNoActiveEmergency
	}

	reason := fmt.Sprintf("No response to confirmation window - %s", ip.Source)
	return uc.escalateAlert(ctx, active[0].ID, reason, "patient:"+ip.PatientID)
}

// escalateAlert performs the store transition, then fans out notifications.
// The store transition comes first: the terminal-state guard is what makes a
// racing acknowledge/timer pair resolve exactly once.
func (uc *usecase) escalateAlert(ctx context.Context, alertID, reason, actor string) (alert.EscalateOutput, error) {
	a, err := uc.repo.Escalate(ctx, alertID, reason, actor)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return alert.EscalateOutput{}, alert.ErrAlertNotFound
		case repository.ErrAlreadyTerminal:
			return alert.EscalateOutput{Alert: a, AlreadyResolved: true}, nil
		default:
			uc.l.Errorf(ctx, "internal.alert.usecase.escalateAlert.Escalate: %v", err)
			return alert.EscalateOutput{}, err
		}
	}

	uc.cancelWindow(alertID)

	escalatedEvent := a.Events[len(a.Events)-1]
	uc.appendAudit(ctx, a, escalatedEvent)

	out := alert.EscalateOutput{Alert: a}

	// Each channel is independently best-effort: an emergency must never be
	// blocked on a notification transport error.
	out.DoctorNotified = uc.notifyDoctor(ctx, a)
	if a.Severity == model.SeverityCritical {
		out.EmergencyServiceNotified = uc.notifyEmergencyServices(ctx, a)
	}
	uc.notifyObservers(ctx, a, escalatedEvent)

	return out, nil
}

func (uc *usecase) notifyDoctor(ctx context.Context, a model.Alert) bool {
	if uc.doctor == nil {
		return false
	}
	if err := uc.doctor.NotifyDoctor(ctx, a); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.notifyDoctor: alert %s: %v", a.ID, err)
		return false
	}
	return true
}

func (uc *usecase) notifyEmergencyServices(ctx context.Context, a model.Alert) bool {
	if uc.emergency == nil {
		return false
	}
	if err := uc.emergency.NotifyEmergencyServices(ctx, a); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.notifyEmergencyServices: alert %s: %v", a.ID, err)
		return false
	}
	return true
}

func (uc *usecase) notifyObservers(ctx context.Context, a model.Alert, ev model.AlertEvent) {
	for _, o := range uc.observers {
		o.OnAlertEvent(ctx, a, ev)
	}
}

func (uc *usecase) appendAudit(ctx context.Context, a model.Alert, ev model.AlertEvent) {
	if uc.auditRepo == nil {
		return
	}
	if err := uc.auditRepo.Append(ctx, a, ev); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.appendAudit: alert %s event %s: %v", a.ID, ev.Event, err)
	}
}

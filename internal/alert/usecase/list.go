package usecase

import (
	"context"

	"vitalguard-api/internal/access"
	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
)

// viewCapability picks the capability gating a read of the given patient's
// alerts: own-view for self, patient-view otherwise.
func viewCapability(sc model.Scope, patientID string) access.Capability {
	if sc.UserID == patientID {
		return access.CapViewOwnAlerts
	}
	return access.CapViewPatientAlerts
}

func (uc *usecase) ListActive(ctx context.Context, sc model.Scope, patientID string) ([]model.Alert, error) {
	if patientID == "" {
		// Listing across all patients needs the view-all capability.
		if !access.HasCapability(sc.Role, access.CapViewAllAlerts) {
			return nil, alert.ErrPermissionDenied
		}
	} else {
		allowed, err := uc.guard.CanAccess(ctx, sc.UserID, patientID, viewCapability(sc, patientID))
		if err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.ListActive.CanAccess: %v", err)
			return nil, err
		}
		if !allowed {
			return nil, alert.ErrPermissionDenied
		}
	}

	alerts, err := uc.repo.ListActive(ctx, repository.ListActiveOptions{PatientID: patientID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ListActive: %v", err)
		return nil, err
	}

	return alerts, nil
}

func (uc *usecase) History(ctx context.Context, sc model.Scope, ip alert.HistoryInput) (alert.HistoryOutput, error) {
	patientID := ip.Filter.PatientID
	if patientID == "" {
		if !access.HasCapability(sc.Role, access.CapViewAllAlerts) {
			return alert.HistoryOutput{}, alert.ErrPermissionDenied
		}
	} else {
		historyCap := access.CapViewPatientHistory
		if sc.UserID == patientID {
			historyCap = access.CapViewOwnAlerts
		}
		allowed, err := uc.guard.CanAccess(ctx, sc.UserID, patientID, historyCap)
		if err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.History.CanAccess: %v", err)
			return alert.HistoryOutput{}, err
		}
		if !allowed {
			return alert.HistoryOutput{}, alert.ErrPermissionDenied
		}
	}

	alerts, pag, err := uc.repo.List(ctx, repository.ListOptions{
		Filter: repository.Filter{
			PatientID: ip.Filter.PatientID,
			Types:     ip.Filter.Types,
			States:    ip.Filter.States,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.History.List: %v", err)
		return alert.HistoryOutput{}, err
	}

	return alert.HistoryOutput{Alerts: alerts, Paginator: pag}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error) {
	a, err := uc.repo.Get(ctx, alertID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Detail.Get: %v", err)
		return model.Alert{}, err
	}

	allowed, err := uc.guard.CanAccess(ctx, sc.UserID, a.PatientID, viewCapability(sc, a.PatientID))
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Detail.CanAccess: %v", err)
		return model.Alert{}, err
	}
	if !allowed {
		return model.Alert{}, alert.ErrPermissionDenied
	}

	return a, nil
}

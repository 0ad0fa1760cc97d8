package alert

import (
	"context"

	"vitalguard-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// SubmitSignal evaluates one normalized signal and creates (or attaches
	// to) an alert. Normal-level signals produce no alert.
	SubmitSignal(ctx context.Context, ip SubmitSignalInput) (SubmitSignalOutput, error)

	// Acknowledge resolves a pending alert on behalf of a caregiver and
	// cancels its confirmation window.
	Acknowledge(ctx context.Context, sc model.Scope, alertID string) (AckOutput, error)

	// ForceEscalate escalates a pending alert immediately, bypassing the
	// confirmation window.
	ForceEscalate(ctx context.Context, sc model.Scope, ip ForceEscalateInput) (EscalateOutput, error)

	// ConfirmNoResponse escalates the patient's active emergency after the
	// patient failed to confirm they are okay.
	ConfirmNoResponse(ctx context.Context, ip ConfirmNoResponseInput) (EscalateOutput, error)

	// ListActive returns the patient's unresolved alerts in insertion order.
	ListActive(ctx context.Context, sc model.Scope, patientID string) ([]model.Alert, error)

	// History returns a paginated listing of past alerts.
	History(ctx context.Context, sc model.Scope, ip HistoryInput) (HistoryOutput, error)

	// Detail returns one alert with its full event history.
	Detail(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error)
}

package notifier

import (
	"context"

	"vitalguard-api/internal/model"
)

//go:generate mockery --name DoctorNotifier
// DoctorNotifier reaches the patient's assigned doctor/caregiver. Fire and
// forget: the dispatcher logs failures and continues.
type DoctorNotifier interface {
	NotifyDoctor(ctx context.Context, alert model.Alert) error
}

//go:generate mockery --name EmergencyNotifier
// EmergencyNotifier reaches emergency services. Invoked only for
// critical-severity escalations.
type EmergencyNotifier interface {
	NotifyEmergencyServices(ctx context.Context, alert model.Alert) error
}

// Observer is the extension point for additional escalation channels.
// Observers receive every alert lifecycle event.
type Observer interface {
	OnAlertEvent(ctx context.Context, alert model.Alert, event model.AlertEvent)
}

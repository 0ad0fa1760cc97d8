package model

import "time"

// AlertType is the domain tag of an alert.
type AlertType string

const (
	AlertTypeEmergency      AlertType = "emergency"
	AlertTypeCriticalVitals AlertType = "critical_vitals"
	AlertTypeFallDetected   AlertType = "fall_detected"
	AlertTypeStressDetected AlertType = "stress_detected"
)

// Severity levels for an alert.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AlertState is the lifecycle state of an alert. Transitions are monotonic:
// Pending -> {Acknowledged | Escalated}; terminal states never revert.
type AlertState string

const (
	StatePending      AlertState = "pending"
	StateAcknowledged AlertState = "acknowledged"
	StateEscalated    AlertState = "escalated"
)

// Terminal reports whether s is a terminal state.
func (s AlertState) Terminal() bool {
	return s == StateAcknowledged || s == StateEscalated
}

// Audit event names recorded on every state transition.
const (
	EventCreated      = "created"
	EventAcknowledged = "acknowledged"
	EventEscalated    = "escalated"
)

// SystemTimeoutActor marks transitions driven by the confirmation-window
// timer rather than a human.
const SystemTimeoutActor = "system:timeout"

// AlertEvent is one entry of an alert's transition history.
type AlertEvent struct {
	Event     string    `json:"event"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Alert is the central entity of the alerting engine.
type Alert struct {
	ID                   string       `json:"id"`
	PatientID            string       `json:"patient_id"`
	Type                 AlertType    `json:"type"`
	Source               SignalSource `json:"source"`
	Severity             Severity     `json:"severity"`
	Message              string       `json:"message"`
	State                AlertState   `json:"state"`
	RequiresConfirmation bool         `json:"requires_confirmation"`
	CreatedAt            time.Time    `json:"created_at"`
	AcknowledgedBy       *string      `json:"acknowledged_by,omitempty"`
	AcknowledgedAt       *time.Time   `json:"acknowledged_at,omitempty"`
	EscalatedAt          *time.Time   `json:"escalated_at,omitempty"`
	EscalationReason     *string      `json:"escalation_reason,omitempty"`
	Events               []AlertEvent `json:"events"`
}

// Active reports whether the alert still awaits resolution.
func (a Alert) Active() bool {
	return !a.State.Terminal()
}

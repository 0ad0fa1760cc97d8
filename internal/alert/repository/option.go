package repository

import (
	"time"

	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/paginator"
)

// AlertDraft is the immutable input to Create. The store assigns id, state
// and creation timestamp.
type AlertDraft struct {
	// ID is normally empty and assigned by the store. Replay paths may carry
	// an explicit id; inserting a duplicate panics.
	ID                   string
	PatientID            string
	Type                 model.AlertType
	Source               model.SignalSource
	Severity             model.Severity
	Message              string
	RequiresConfirmation bool
}

// CreateOptions contains options for creating an alert.
type CreateOptions struct {
	Draft AlertDraft
}

// Filter contains filtering options for alert queries.
type Filter struct {
	PatientID string
	Types     []model.AlertType
	States    []model.AlertState
}

// ListActiveOptions contains options for listing active alerts.
type ListActiveOptions struct {
	PatientID string
	Type      model.AlertType
}

// ListOptions contains options for paginated alert listing.
type ListOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// ListEventsOptions contains options for listing audit events.
type ListEventsOptions struct {
	PatientID string
	From      time.Time
	To        time.Time
}

// AuditEvent is one persisted audit log row.
type AuditEvent struct {
	ID        int64
	AlertID   string
	PatientID string
	AlertType model.AlertType
	Severity  model.Severity
	Event     string
	Actor     string
	Detail    string
	Timestamp time.Time
}

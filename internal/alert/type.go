package alert

import (
	"time"

	"vitalguard-api/internal/model"
	"vitalguard-api/pkg/paginator"
)

type SubmitSignalInput struct {
	Signal model.Signal
}

type SubmitSignalOutput struct {
	// Alert is nil when the signal classified as normal and produced nothing.
	Alert *model.Alert
	// Created is false when the signal attached to an existing active alert.
	Created bool
	// TimeRemaining is the confirmation window left on the returned alert,
	// zero for alerts that do not require confirmation.
	TimeRemaining time.Duration
}

type AckOutput struct {
	Alert model.Alert
	// AlreadyResolved is true when the alert had reached a terminal state
	// before this call. Benign: the caller lost the race, nothing changed.
	AlreadyResolved bool
}

type ForceEscalateInput struct {
	AlertID string
	Reason  string
}

type ConfirmNoResponseInput struct {
	PatientID string
	Source    model.SignalSource
}

type EscalateOutput struct {
	Alert           model.Alert
	AlreadyResolved bool
	// DoctorNotified reports whether the primary doctor notification path
	// succeeded. Secondary channel failures are logged, never raised.
	DoctorNotified           bool
	EmergencyServiceNotified bool
}

type Filter struct {
	PatientID string
	Types     []model.AlertType
	States    []model.AlertState
}

type HistoryInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type HistoryOutput struct {
	Alerts    []model.Alert
	Paginator paginator.Paginator
}

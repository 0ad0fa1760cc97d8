package http

import (
	"strings"
	"time"

	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/model"
	"vitalguard-api/internal/vitals"
	"vitalguard-api/pkg/paginator"
)

type vitalsReq struct {
	HeartRate   *int     `json:"heart_rate"`
	Temperature *float64 `json:"temperature"`
	Oxygen      *int     `json:"oxygen"`
	Systolic    *int     `json:"systolic"`
	Diastolic   *int     `json:"diastolic"`
}

func (req vitalsReq) toRaw() vitals.RawVitals {
	return vitals.RawVitals{
		HeartRate:   req.HeartRate,
		Temperature: req.Temperature,
		Oxygen:      req.Oxygen,
		Systolic:    req.Systolic,
		Diastolic:   req.Diastolic,
	}
}

type signalReq struct {
	PatientID    string     `json:"patient_id"`
	Source       string     `json:"source" binding:"required"`
	Kind         string     `json:"kind"`
	SeverityHint string     `json:"severity_hint"`
	Vitals       *vitalsReq `json:"vitals"`
	// Confirmed marks the confirmed-not-okay response to a confirmation
	// prompt. It escalates the patient's active emergency instead of
	// raising a new alert.
	Confirmed bool `json:"confirmed"`
}

func (req signalReq) toInput() alert.SubmitSignalInput {
	sig := model.Signal{
		PatientID:    req.PatientID,
		Source:       model.SignalSource(req.Source),
		Kind:         req.Kind,
		SeverityHint: model.SeverityHint(req.SeverityHint),
		Timestamp:    time.Now(),
	}
	if req.Vitals != nil {
		snapshot := vitals.Normalize(req.PatientID, req.Vitals.toRaw())
		sig.Vitals = &snapshot
	}
	return alert.SubmitSignalInput{Signal: sig}
}

func (req signalReq) toConfirmInput() alert.ConfirmNoResponseInput {
	return alert.ConfirmNoResponseInput{
		PatientID: req.PatientID,
		Source:    model.SignalSource(req.Source),
	}
}

type forceEscalateReq struct {
	Reason string `json:"reason"`
}

type historyReq struct {
	PatientID string `form:"patient_id"`
	Types     string `form:"types"`
	States    string `form:"states"`
	paginator.PaginateQuery
}

func (req historyReq) toInput() alert.HistoryInput {
	ip := alert.HistoryInput{
		Filter:        alert.Filter{PatientID: req.PatientID},
		PaginateQuery: req.PaginateQuery,
	}
	for _, t := range splitCSV(req.Types) {
		ip.Filter.Types = append(ip.Filter.Types, model.AlertType(t))
	}
	for _, s := range splitCSV(req.States) {
		ip.Filter.States = append(ip.Filter.States, model.AlertState(s))
	}
	return ip
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type alertEventResp struct {
	Event     string    `json:"event"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type alertResp struct {
	ID                   string           `json:"id"`
	PatientID            string           `json:"patient_id"`
	Type                 string           `json:"type"`
	Source               string           `json:"source"`
	Severity             string           `json:"severity"`
	Message              string           `json:"message"`
	State                string           `json:"state"`
	RequiresConfirmation bool             `json:"requires_confirmation"`
	CreatedAt            time.Time        `json:"created_at"`
	AcknowledgedBy       *string          `json:"acknowledged_by,omitempty"`
	AcknowledgedAt       *time.Time       `json:"acknowledged_at,omitempty"`
	EscalatedAt          *time.Time       `json:"escalated_at,omitempty"`
	EscalationReason     *string          `json:"escalation_reason,omitempty"`
	Events               []alertEventResp `json:"events,omitempty"`
}

func newAlertResp(a model.Alert) alertResp {
	resp := alertResp{
		ID:                   a.ID,
		PatientID:            a.PatientID,
		Type:                 string(a.Type),
		Source:               string(a.Source),
		Severity:             string(a.Severity),
		Message:              a.Message,
		State:                string(a.State),
		RequiresConfirmation: a.RequiresConfirmation,
		CreatedAt:            a.CreatedAt,
		AcknowledgedBy:       a.AcknowledgedBy,
		AcknowledgedAt:       a.AcknowledgedAt,
		EscalatedAt:          a.EscalatedAt,
		EscalationReason:     a.EscalationReason,
	}
	for _, ev := range a.Events {
		resp.Events = append(resp.Events, alertEventResp{
			Event:     ev.Event,
			Actor:     ev.Actor,
			Detail:    ev.Detail,
			Timestamp: ev.Timestamp,
		})
	}
	return resp
}

func newAlertListResp(alerts []model.Alert) []alertResp {
	out := make([]alertResp, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, newAlertResp(a))
	}
	return out
}

type submitResp struct {
	// Raised is false when the signal classified as normal and no alert
	// exists for it.
	Raised               bool       `json:"raised"`
	Created              bool       `json:"created"`
	TimeRemainingSeconds float64    `json:"time_remaining_seconds,omitempty"`
	Alert                *alertResp `json:"alert,omitempty"`
}

func newSubmitResp(out alert.SubmitSignalOutput) submitResp {
	resp := submitResp{
		Raised:               out.Alert != nil,
		Created:              out.Created,
		TimeRemainingSeconds: out.TimeRemaining.Seconds(),
	}
	if out.Alert != nil {
		a := newAlertResp(*out.Alert)
		resp.Alert = &a
	}
	return resp
}

type ackResp struct {
	Alert           alertResp `json:"alert"`
	AlreadyResolved bool      `json:"already_resolved"`
}

func newAckResp(out alert.AckOutput) ackResp {
	return ackResp{
		Alert:           newAlertResp(out.Alert),
		AlreadyResolved: out.AlreadyResolved,
	}
}

type escalateResp struct {
	Alert                    alertResp `json:"alert"`
	AlreadyResolved          bool      `json:"already_resolved"`
	DoctorNotified           bool      `json:"doctor_notified"`
	EmergencyServiceNotified bool      `json:"emergency_service_notified"`
}

func newEscalateResp(out alert.EscalateOutput) escalateResp {
	return escalateResp{
		Alert:                    newAlertResp(out.Alert),
		AlreadyResolved:          out.AlreadyResolved,
		DoctorNotified:           out.DoctorNotified,
		EmergencyServiceNotified: out.EmergencyServiceNotified,
	}
}

type historyResp struct {
	Alerts     []alertResp         `json:"alerts"`
	Pagination paginator.Paginator `json:"pagination"`
}

func newHistoryResp(out alert.HistoryOutput) historyResp {
	return historyResp{
		Alerts:     newAlertListResp(out.Alerts),
		Pagination: out.Paginator,
	}
}

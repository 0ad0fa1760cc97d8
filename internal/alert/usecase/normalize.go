package usecase

import (
	"strings"

	"vitalguard-api/internal/alert"
	"vitalguard-api/internal/alert/repository"
	"vitalguard-api/internal/model"
	"vitalguard-api/internal/vitals"
)

func validateSignal(sig model.Signal) error {
	if sig.PatientID == "" {
		return alert.ErrInvalidSignal
	}
	if !model.ValidSource(sig.Source) {
		return alert.ErrInvalidSignal
	}
	if !model.ValidHint(sig.SeverityHint) {
		return alert.ErrInvalidSignal
	}
	if sig.Source == model.SourceVitals && sig.Vitals == nil {
		return alert.ErrInvalidSignal
	}
	return nil
}

// buildDraft maps one signal to an alert draft. A nil draft means the signal
// classified as normal and nothing is raised.
func buildDraft(sig model.Signal) *repository.AlertDraft {
	if sig.Source == model.SourceVitals {
		return buildVitalsDraft(sig)
	}

	if sig.SeverityHint == model.HintNormal || sig.SeverityHint == "" {
		return nil
	}

	draft := repository.AlertDraft{
		PatientID:            sig.PatientID,
		Type:                 model.AlertTypeEmergency,
		Source:               sig.Source,
		RequiresConfirmation: true,
	}

	switch sig.Source {
	case model.SourceFall:
		draft.Message = "Potential fall detected"
		draft.Severity = model.SeverityCritical
	case model.SourceCough:
		draft.Message = "Severe coughing episode detected"
		draft.Severity = model.SeverityHigh
	case model.SourceVoice:
		draft.Message = "Voice command emergency trigger"
		draft.Severity = model.SeverityHigh
	default:
		draft.Message = "Emergency button pressed"
		draft.Severity = model.SeverityHigh
	}

	return &draft
}

func buildVitalsDraft(sig model.Signal) *repository.AlertDraft {
	classification := vitals.Classify(*sig.Vitals)

	switch classification.Level {
	case vitals.LevelFatal:
		return &repository.AlertDraft{
			PatientID:            sig.PatientID,
			Type:                 model.AlertTypeEmergency,
			Source:               model.SourceVitals,
			Severity:             model.SeverityCritical,
			Message:              "FATAL VITAL SIGNS: " + strings.Join(classification.Reasons, ", "),
			RequiresConfirmation: true,
		}
	case vitals.LevelCritical:
		return &repository.AlertDraft{
			PatientID: sig.PatientID,
			Type:      model.AlertTypeCriticalVitals,
			Source:    model.SourceVitals,
			Severity:  model.SeverityHigh,
			Message:   strings.Join(classification.Reasons, ", "),
		}
	default:
		return nil
	}
}

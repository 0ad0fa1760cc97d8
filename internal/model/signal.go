package model

import "time"

// SignalSource identifies which sensor/collaborator produced a signal.
type SignalSource string

const (
	SourceVitals SignalSource = "vitals"
	SourceVoice  SignalSource = "voice"
	SourceFall   SignalSource = "fall"
	SourceCough  SignalSource = "cough"
	SourceManual SignalSource = "manual"
)

// ValidSource reports whether s is one of the known signal sources.
func ValidSource(s SignalSource) bool {
	switch s {
	case SourceVitals, SourceVoice, SourceFall, SourceCough, SourceManual:
		return true
	}
	return false
}

// SeverityHint is the severity suggested by the originating collaborator for
// non-vitals signals. Vitals signals carry a snapshot instead and are
// classified by the threshold evaluator.
type SeverityHint string

const (
	HintNormal   SeverityHint = "normal"
	HintMedium   SeverityHint = "medium"
	HintHigh     SeverityHint = "high"
	HintCritical SeverityHint = "critical"
)

// ValidHint reports whether h is one of the known severity hints. The
// empty hint is valid and classifies as normal.
func ValidHint(h SeverityHint) bool {
	switch h {
	case "", HintNormal, HintMedium, HintHigh, HintCritical:
		return true
	}
	return false
}

// Signal is a normalized unit of evidence from any sensor or source
// suggesting a patient-state change. Immutable value.
type Signal struct {
	PatientID    string          `json:"patient_id"`
	Source       SignalSource    `json:"source"`
	Kind         string          `json:"kind"` // e.g. "fall_detected", "stress_detected"
	SeverityHint SeverityHint    `json:"severity_hint"`
	Vitals       *VitalsSnapshot `json:"vitals,omitempty"` // set only for Source == vitals
	Timestamp    time.Time       `json:"timestamp"`
}

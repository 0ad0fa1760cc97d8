package model

// VitalsSnapshot is a single point-in-time reading of a patient's vital signs.
// It is produced by the vitals-polling collaborator, consumed once per
// evaluation and never mutated.
type VitalsSnapshot struct {
	PatientID   string  `json:"patient_id"`
	HeartRate   int     `json:"heart_rate"`  // bpm
	Temperature float64 `json:"temperature"` // °F
	Oxygen      int     `json:"oxygen"`      // %
	Systolic    int     `json:"systolic"`    // mmHg
	Diastolic   int     `json:"diastolic"`   // mmHg
}

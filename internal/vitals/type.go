package vitals

// Level is the overall classification of a vitals snapshot.
type Level string

const (
	LevelNormal   Level = "normal"
	LevelCritical Level = "critical"
	LevelFatal    Level = "fatal"
)

// Classification is the result of evaluating one snapshot: the overall level
// plus a human-readable reason per out-of-range field.
type Classification struct {
	Level   Level
	Reasons []string
}

// RawVitals is a snapshot as reported by a collaborator, with every field
// optional. Absent fields take the baseline normal profile defaults.
type RawVitals struct {
	HeartRate   *int     `json:"heart_rate"`
	Temperature *float64 `json:"temperature"`
	Oxygen      *int     `json:"oxygen"`
	Systolic    *int     `json:"systolic"`
	Diastolic   *int     `json:"diastolic"`
}

// Baseline normal profile, applied for absent fields.
const (
	DefaultHeartRate   = 72
	DefaultTemperature = 98.6
	DefaultOxygen      = 98
	DefaultSystolic    = 120
	DefaultDiastolic   = 80
)

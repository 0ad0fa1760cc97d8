package vitals

import (
	"vitalguard-api/internal/model"
)

// Normalize fills absent fields of a reported snapshot with the baseline
// normal profile and returns an immutable snapshot for evaluation.
func Normalize(patientID string, raw RawVitals) model.VitalsSnapshot {
	snapshot := model.VitalsSnapshot{
		PatientID:   patientID,
		HeartRate:   DefaultHeartRate,
		Temperature: DefaultTemperature,
		Oxygen:      DefaultOxygen,
		Systolic:    DefaultSystolic,
		Diastolic:   DefaultDiastolic,
	}
	if raw.HeartRate != nil {
		snapshot.HeartRate = *raw.HeartRate
	}
	if raw.Temperature != nil {
		snapshot.Temperature = *raw.Temperature
	}
	if raw.Oxygen != nil {
		snapshot.Oxygen = *raw.Oxygen
	}
	if raw.Systolic != nil {
		snapshot.Systolic = *raw.Systolic
	}
	if raw.Diastolic != nil {
		snapshot.Diastolic = *raw.Diastolic
	}
	return snapshot
}

// Classify maps a vitals snapshot to an overall level plus per-field reasons.
// Fatal takes precedence over critical per field; reasons accumulate across
// all fields. Pure and deterministic.
func Classify(v model.VitalsSnapshot) Classification {
	var (
		fatal    bool
		critical bool
		reasons  []string
	)

	if v.HeartRate > 150 || v.HeartRate < 40 {
		fatal = true
		reasons = append(reasons, "Severely abnormal heart rate")
	} else if v.HeartRate > 100 || v.HeartRate < 60 {
		critical = true
		reasons = append(reasons, "Abnormal heart rate")
	}

	if v.Temperature > 103 {
		fatal = true
		reasons = append(reasons, "Dangerous fever")
	} else if v.Temperature > 100.4 {
		critical = true
		reasons = append(reasons, "Fever detected")
	}

	if v.Oxygen < 88 {
		fatal = true
		reasons = append(reasons, "Severe oxygen deficiency")
	} else if v.Oxygen < 95 {
		critical = true
		reasons = append(reasons, "Low oxygen level")
	}

	if v.Systolic > 180 || v.Diastolic > 120 {
		fatal = true
		reasons = append(reasons, "Hypertensive crisis")
	}

	switch {
	case fatal:
		return Classification{Level: LevelFatal, Reasons: reasons}
	case critical:
		return Classification{Level: LevelCritical, Reasons: reasons}
	default:
		return Classification{Level: LevelNormal, Reasons: nil}
	}
}

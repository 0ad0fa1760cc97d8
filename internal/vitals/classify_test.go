package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalguard-api/internal/model"
)

func snapshot(hr int, temp float64, o2, sys, dia int) model.VitalsSnapshot {
	return model.VitalsSnapshot{
		PatientID:   "p-1",
		HeartRate:   hr,
		Temperature: temp,
		Oxygen:      o2,
		Systolic:    sys,
		Diastolic:   dia,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		vitals      model.VitalsSnapshot
		wantLevel   Level
		wantReasons []string
	}{
		{
			name:      "baseline normal profile",
			vitals:    snapshot(72, 98.6, 98, 120, 80),
			wantLevel: LevelNormal,
		},
		{
			name:        "tachycardia fatal",
			vitals:      snapshot(155, 98.6, 97, 120, 80),
			wantLevel:   LevelFatal,
			wantReasons: []string{"Severely abnormal heart rate"},
		},
		{
			name:        "bradycardia fatal",
			vitals:      snapshot(35, 98.6, 98, 120, 80),
			wantLevel:   LevelFatal,
			wantReasons: []string{"Severely abnormal heart rate"},
		},
		{
			name:        "elevated heart rate critical",
			vitals:      snapshot(110, 98.6, 98, 120, 80),
			wantLevel:   LevelCritical,
			wantReasons: []string{"Abnormal heart rate"},
		},
		{
			name:        "low heart rate critical",
			vitals:      snapshot(55, 98.6, 98, 120, 80),
			wantLevel:   LevelCritical,
			wantReasons: []string{"Abnormal heart rate"},
		},
		{
			name:        "dangerous fever",
			vitals:      snapshot(72, 103.5, 98, 120, 80),
			wantLevel:   LevelFatal,
			wantReasons: []string{"Dangerous fever"},
		},
		{
			name:        "mild fever critical",
			vitals:      snapshot(72, 101.0, 98, 120, 80),
			wantLevel:   LevelCritical,
			wantReasons: []string{"Fever detected"},
		},
		{
			name:        "severe hypoxia fatal",
			vitals:      snapshot(72, 98.6, 85, 120, 80),
			wantLevel:   LevelFatal,
			wantReasons: []string{"Severe oxygen deficiency"},
		},
		{
			name:        "low oxygen critical",
			vitals:      snapshot(72, 98.6, 92, 120, 80),
			wantLevel:   LevelCritical,
			wantReasons: []string{"Low oxygen level"},
		},
		{
			name:        "hypertensive crisis by systolic",
			vitals:      snapshot(72, 98.6, 98, 185, 80),
			wantLevel:   LevelFatal,
			wantReasons: []string{"Hypertensive crisis"},
		},
		{
			name:        "hypertensive crisis by diastolic",
			vitals:      snapshot(72, 98.6, 98, 120, 125),
			wantLevel:   LevelFatal,
			wantReasons: []string{"Hypertensive crisis"},
		},
		{
			name:      "fatal precedence over critical accumulates both reasons",
			vitals:    snapshot(160, 98.6, 90, 120, 80),
			wantLevel: LevelFatal,
			wantReasons: []string{
				"Severely abnormal heart rate",
				"Low oxygen level",
			},
		},
		{
			name:      "multiple criticals accumulate",
			vitals:    snapshot(110, 101.0, 92, 120, 80),
			wantLevel: LevelCritical,
			wantReasons: []string{
				"Abnormal heart rate",
				"Fever detected",
				"Low oxygen level",
			},
		},
		{
			name:      "boundary values are not out of range",
			vitals:    snapshot(100, 100.4, 95, 180, 120),
			wantLevel: LevelNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.vitals)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantReasons, got.Reasons)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	v := snapshot(160, 104.0, 85, 190, 130)
	first := Classify(v)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Classify(v))
	}
}

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize("p-1", RawVitals{})
	want := snapshot(DefaultHeartRate, DefaultTemperature, DefaultOxygen, DefaultSystolic, DefaultDiastolic)
	assert.Equal(t, want, got)
}

func TestNormalizePartial(t *testing.T) {
	hr := 155
	o2 := 90
	got := Normalize("p-2", RawVitals{HeartRate: &hr, Oxygen: &o2})

	assert.Equal(t, 155, got.HeartRate)
	assert.Equal(t, 90, got.Oxygen)
	assert.Equal(t, DefaultTemperature, got.Temperature)
	assert.Equal(t, DefaultSystolic, got.Systolic)
	assert.Equal(t, DefaultDiastolic, got.Diastolic)
	assert.Equal(t, "p-2", got.PatientID)
}

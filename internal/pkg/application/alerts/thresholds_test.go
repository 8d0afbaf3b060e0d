package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/matryer/is"
)

func TestHighHeartRateTriggersMediumSeverity(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.HeartRate = f64(130)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.AlertHeartRateHigh, candidates[0].AlertType)
	is.Equal(types.SeverityMedium, candidates[0].Severity)
}

func TestVeryHighHeartRateTriggersHighSeverity(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.HeartRate = f64(160)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.SeverityHigh, candidates[0].Severity)
}

func TestLowHeartRateTriggersHighSeverity(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.HeartRate = f64(35)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.AlertHeartRateLow, candidates[0].AlertType)
	is.Equal(types.SeverityHigh, candidates[0].Severity)
}

func TestBloodPressureCrisisTriggersHighSeverity(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.SystolicBP = f64(185)
		m.DiastolicBP = f64(95)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.AlertBloodPressureHigh, candidates[0].AlertType)
	is.Equal(types.SeverityHigh, candidates[0].Severity)
}

func TestElevatedDiastolicAloneTriggersAlert(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.DiastolicBP = f64(95)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.AlertBloodPressureHigh, candidates[0].AlertType)
	is.Equal(types.SeverityMedium, candidates[0].Severity)
}

func TestCriticallyLowBloodOxygen(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.BloodOxygen = f64(85)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.AlertBloodOxygenLow, candidates[0].AlertType)
	is.Equal(types.SeverityCritical, candidates[0].Severity)
}

func TestLowBloodOxygenTriggersHighSeverity(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.BloodOxygen = f64(90)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(1, len(candidates))
	is.Equal(types.SeverityHigh, candidates[0].Severity)
}

func TestFeverSeverities(t *testing.T) {
	is := is.New(t)

	mild := newMeasurement(func(m *types.Measurement) { m.Temperature = f64(38.5) })
	high := newMeasurement(func(m *types.Measurement) { m.Temperature = f64(39.5) })

	mildCandidates := evaluateThresholds(mild, DefaultThresholds())
	highCandidates := evaluateThresholds(high, DefaultThresholds())

	is.Equal(types.SeverityMedium, mildCandidates[0].Severity)
	is.Equal(types.SeverityHigh, highCandidates[0].Severity)
}

func TestMeasurementWithoutVitalsTriggersNothing(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.Steps = intp(4200)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(0, len(candidates))
}

func TestOneMeasurementCanTriggerSeveralAlerts(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.HeartRate = f64(160)
		m.BloodOxygen = f64(85)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(2, len(candidates))
	is.Equal(types.AlertHeartRateHigh, candidates[0].AlertType)
	is.Equal(types.AlertBloodOxygenLow, candidates[1].AlertType)
}

func TestNormalVitalsTriggerNothing(t *testing.T) {
	is := is.New(t)

	m := newMeasurement(func(m *types.Measurement) {
		m.HeartRate = f64(72)
		m.SystolicBP = f64(118)
		m.DiastolicBP = f64(76)
		m.BloodOxygen = f64(98)
		m.Temperature = f64(36.8)
	})

	candidates := evaluateThresholds(m, DefaultThresholds())

	is.Equal(0, len(candidates))
}

func TestLoadThresholdsKeepsDefaultsForOmittedKeys(t *testing.T) {
	is := is.New(t)

	yml := strings.NewReader("heartRateHigh: 110\nbloodOxygenLow: 94\n")

	thresholds, err := LoadThresholds(yml)

	is.NoErr(err)
	is.Equal(110.0, thresholds.HeartRateHigh)
	is.Equal(94.0, thresholds.BloodOxygenLow)
	is.Equal(40.0, thresholds.HeartRateLow)
	is.Equal(24*3600, thresholds.OfflineAfterSeconds)
}

func newMeasurement(mods ...func(*types.Measurement)) types.Measurement {
	m := types.Measurement{
		ID:              "m-01",
		PatientID:       "p-01",
		DeviceID:        "d-01",
		MeasurementTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	for _, mod := range mods {
		mod(&m)
	}

	return m
}

func f64(v float64) *float64 {
	return &v
}

func intp(v int) *int {
	return &v
}

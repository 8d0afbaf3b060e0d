package alerts

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"gopkg.in/yaml.v2"
)

// Thresholds holds the cutoffs the evaluator compares vitals against.
// They are loaded once at startup and passed in explicitly so tests can
// supply alternates per case.
type Thresholds struct {
	HeartRateLow        float64 `yaml:"heartRateLow"`
	HeartRateHigh       float64 `yaml:"heartRateHigh"`
	SystolicBPHigh      float64 `yaml:"systolicBPHigh"`
	DiastolicBPHigh     float64 `yaml:"diastolicBPHigh"`
	BloodOxygenLow      float64 `yaml:"bloodOxygenLow"`
	TemperatureHigh     float64 `yaml:"temperatureHigh"`
	OfflineAfterSeconds int     `yaml:"offlineAfterSeconds"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HeartRateLow:        40,
		HeartRateHigh:       120,
		SystolicBPHigh:      140,
		DiastolicBPHigh:     90,
		BloodOxygenLow:      92,
		TemperatureHigh:     38.0,
		OfflineAfterSeconds: 24 * 3600,
	}
}

func LoadThresholds(data io.Reader) (Thresholds, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return Thresholds{}, err
	}

	t := DefaultThresholds()
	if err := yaml.Unmarshal(buf, &t); err != nil {
		return Thresholds{}, err
	}

	return t, nil
}

// ApplyEnvOverrides lets deployments change cutoffs without touching the
// configuration file. Environment always wins.
func (t Thresholds) ApplyEnvOverrides(ctx context.Context) Thresholds {
	override := func(name string, current float64) float64 {
		s := env.GetVariableOrDefault(ctx, name, "")
		if s == "" {
			return current
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return current
		}
		return f
	}

	t.HeartRateLow = override("HEART_RATE_ALERT_THRESHOLD_LOW", t.HeartRateLow)
	t.HeartRateHigh = override("HEART_RATE_ALERT_THRESHOLD_HIGH", t.HeartRateHigh)
	t.SystolicBPHigh = override("BLOOD_PRESSURE_SYSTOLIC_HIGH", t.SystolicBPHigh)
	t.DiastolicBPHigh = override("BLOOD_PRESSURE_DIASTOLIC_HIGH", t.DiastolicBPHigh)
	t.BloodOxygenLow = override("BLOOD_OXYGEN_LOW", t.BloodOxygenLow)
	t.TemperatureHigh = override("TEMPERATURE_HIGH", t.TemperatureHigh)

	return t
}

// evaluateThresholds maps a single measurement to zero or more candidate
// alerts. Each rule is independent and a measurement can trigger several
// alerts at once. Absent fields are never evaluated.
func evaluateThresholds(m types.Measurement, t Thresholds) []types.Alert {
	candidates := make([]types.Alert, 0)

	ts := m.MeasurementTime.Format(time.RFC3339)

	if m.HeartRate != nil {
		hr := *m.HeartRate

		if hr > t.HeartRateHigh {
			severity := types.SeverityMedium
			if hr > 150 {
				severity = types.SeverityHigh
			}

			candidates = append(candidates, types.Alert{
				PatientID:   m.PatientID,
				AlertType:   types.AlertHeartRateHigh,
				Severity:    severity,
				Title:       fmt.Sprintf("High Heart Rate Alert: %g BPM", hr),
				Description: "Patient's heart rate is elevated above normal threshold.",
				Data: map[string]any{
					"measurement_id": m.ID,
					"heart_rate":     hr,
					"threshold":      t.HeartRateHigh,
					"timestamp":      ts,
				},
				MeasurementID: m.ID,
			})
		} else if hr < t.HeartRateLow {
			severity := types.SeverityMedium
			if hr < 40 {
				severity = types.SeverityHigh
			}

			candidates = append(candidates, types.Alert{
				PatientID:   m.PatientID,
				AlertType:   types.AlertHeartRateLow,
				Severity:    severity,
				Title:       fmt.Sprintf("Low Heart Rate Alert: %g BPM", hr),
				Description: "Patient's heart rate is below normal threshold.",
				Data: map[string]any{
					"measurement_id": m.ID,
					"heart_rate":     hr,
					"threshold":      t.HeartRateLow,
					"timestamp":      ts,
				},
				MeasurementID: m.ID,
			})
		}
	}

	if m.SystolicBP != nil || m.DiastolicBP != nil {
		systolicHigh := m.SystolicBP != nil && *m.SystolicBP > t.SystolicBPHigh
		diastolicHigh := m.DiastolicBP != nil && *m.DiastolicBP > t.DiastolicBPHigh

		if systolicHigh || diastolicHigh {
			severity := types.SeverityMedium
			if (m.SystolicBP != nil && *m.SystolicBP > 180) || (m.DiastolicBP != nil && *m.DiastolicBP > 120) {
				severity = types.SeverityHigh
			}

			candidates = append(candidates, types.Alert{
				PatientID:   m.PatientID,
				AlertType:   types.AlertBloodPressureHigh,
				Severity:    severity,
				Title:       fmt.Sprintf("High Blood Pressure Alert: %s/%s mmHg", formatVital(m.SystolicBP), formatVital(m.DiastolicBP)),
				Description: "Patient's blood pressure is above normal threshold.",
				Data: map[string]any{
					"measurement_id":      m.ID,
					"systolic_bp":         m.SystolicBP,
					"diastolic_bp":        m.DiastolicBP,
					"threshold_systolic":  t.SystolicBPHigh,
					"threshold_diastolic": t.DiastolicBPHigh,
					"timestamp":           ts,
				},
				MeasurementID: m.ID,
			})
		}
	}

	if m.BloodOxygen != nil && *m.BloodOxygen < t.BloodOxygenLow {
		severity := types.SeverityHigh
		if *m.BloodOxygen < 88 {
			severity = types.SeverityCritical
		}

		candidates = append(candidates, types.Alert{
			PatientID:   m.PatientID,
			AlertType:   types.AlertBloodOxygenLow,
			Severity:    severity,
			Title:       fmt.Sprintf("Low Blood Oxygen Alert: %g%%", *m.BloodOxygen),
			Description: "Patient's blood oxygen level is below normal threshold.",
			Data: map[string]any{
				"measurement_id": m.ID,
				"blood_oxygen":   *m.BloodOxygen,
				"threshold":      t.BloodOxygenLow,
				"timestamp":      ts,
			},
			MeasurementID: m.ID,
		})
	}

	if m.Temperature != nil && *m.Temperature > t.TemperatureHigh {
		severity := types.SeverityMedium
		if *m.Temperature > 39.0 {
			severity = types.SeverityHigh
		}

		candidates = append(candidates, types.Alert{
			PatientID:   m.PatientID,
			AlertType:   types.AlertTemperatureHigh,
			Severity:    severity,
			Title:       fmt.Sprintf("High Temperature Alert: %g°C", *m.Temperature),
			Description: "Patient's temperature is above normal threshold.",
			Data: map[string]any{
				"measurement_id": m.ID,
				"temperature":    *m.Temperature,
				"threshold":      t.TemperatureHigh,
				"timestamp":      ts,
			},
			MeasurementID: m.ID,
		})
	}

	return candidates
}

func formatVital(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

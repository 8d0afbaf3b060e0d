package analytics

import (
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
)

type NormalRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type Anomaly struct {
	Parameter   string      `json:"parameter"`
	Value       float64     `json:"value"`
	NormalRange NormalRange `json:"normalRange"`
	Timestamp   time.Time   `json:"timestamp"`
	Severity    string      `json:"severity"`
}

// Clinically normal ranges, boundary inclusive: a value exactly on a
// bound is not an anomaly.
var normalRanges = map[string]NormalRange{
	"heart_rate":       {60, 100},
	"systolic_bp":      {90, 140},
	"diastolic_bp":     {60, 90},
	"blood_oxygen":     {95, 100},
	"temperature":      {36.0, 37.5},
	"respiratory_rate": {12, 20},
}

// detectAnomalies scans every value in the window against the normal
// range table. Unlike the live threshold evaluator this is a historical
// sweep and can report many findings from one window.
func detectAnomalies(measurements []types.Measurement) []Anomaly {
	anomalies := make([]Anomaly, 0)

	for _, p := range vitalParameters {
		r, ok := normalRanges[p.name]
		if !ok {
			continue
		}

		for _, m := range measurements {
			v := p.value(m)
			if v == nil {
				continue
			}

			if *v >= r.Low && *v <= r.High {
				continue
			}

			anomalies = append(anomalies, Anomaly{
				Parameter:   p.name,
				Value:       *v,
				NormalRange: r,
				Timestamp:   m.MeasurementTime,
				Severity:    anomalySeverity(p.name, *v),
			})
		}
	}

	return anomalies
}

func anomalySeverity(parameter string, value float64) string {
	if parameter == "blood_oxygen" && value < 92 {
		return types.SeverityHigh
	}
	if parameter == "heart_rate" && (value < 40 || value > 150) {
		return types.SeverityHigh
	}
	return types.SeverityMedium
}

package analytics

import (
	"context"

	"github.com/careflow/patient-monitoring/pkg/types"
)

type VitalStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Latest  float64 `json:"latest"`
	StdDev  float64 `json:"stdDev"`
}

type VitalsSummary struct {
	PatientID         string                        `json:"patientID"`
	TimePeriodDays    int                           `json:"timePeriodDays"`
	TotalMeasurements int                           `json:"totalMeasurements"`
	Vitals            map[string]VitalStats         `json:"vitalsSummary,omitempty"`
	Trends            map[string]TrendResult        `json:"trends,omitempty"`
	Anomalies         []Anomaly                     `json:"anomalies,omitempty"`
	DailyAverages     map[string]map[string]float64 `json:"dailyAverages,omitempty"`
}

// GetVitalsSummary aggregates a patient's history window into
// per-parameter statistics, regression trends, anomalies and per-day
// averages. An empty window yields a summary with zero measurements, not
// an error.
func (s *svc) GetVitalsSummary(ctx context.Context, patientID string, days int) (VitalsSummary, error) {
	ctx, span := tracer.Start(ctx, "vitals-summary")
	defer span.End()

	measurements, err := s.measurements.GetRecentMeasurements(ctx, patientID, days)
	if err != nil {
		return VitalsSummary{}, err
	}

	summary := VitalsSummary{
		PatientID:         patientID,
		TimePeriodDays:    days,
		TotalMeasurements: len(measurements),
	}

	if len(measurements) == 0 {
		return summary, nil
	}

	summary.Vitals = map[string]VitalStats{}
	summary.Trends = map[string]TrendResult{}

	for _, p := range vitalParameters {
		values := series(measurements, p)
		if len(values) == 0 {
			continue
		}

		min, max := values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		summary.Vitals[p.name] = VitalStats{
			Average: mean(values),
			Min:     min,
			Max:     max,
			Latest:  values[len(values)-1],
			StdDev:  stdDev(values),
		}

		summary.Trends[p.name] = fitTrend(values)
	}

	summary.Anomalies = detectAnomalies(measurements)
	summary.DailyAverages = dailyAverages(measurements)

	return summary, nil
}

// dailyAverages buckets every non-null value by calendar date and
// averages per parameter per day.
func dailyAverages(measurements []types.Measurement) map[string]map[string]float64 {
	type bucket struct {
		sum   float64
		count int
	}

	buckets := map[string]map[string]*bucket{}

	for _, m := range measurements {
		day := dateKey(m.MeasurementTime)

		for _, p := range vitalParameters {
			v := p.value(m)
			if v == nil {
				continue
			}

			if buckets[p.name] == nil {
				buckets[p.name] = map[string]*bucket{}
			}
			if buckets[p.name][day] == nil {
				buckets[p.name][day] = &bucket{}
			}

			buckets[p.name][day].sum += *v
			buckets[p.name][day].count++
		}
	}

	averages := map[string]map[string]float64{}
	for param, byDay := range buckets {
		averages[param] = map[string]float64{}
		for day, b := range byDay {
			averages[param][day] = b.sum / float64(b.count)
		}
	}

	return averages
}

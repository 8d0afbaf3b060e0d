package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	RiskLevelHigh    = "high"
	RiskLevelMedium  = "medium"
	RiskLevelLow     = "low"
	RiskLevelVeryLow = "very_low"
)

type RiskAssessment struct {
	PatientID        string   `json:"patientID"`
	RiskScore        int      `json:"riskScore"`
	RiskLevel        string   `json:"riskLevel"`
	RiskFactors      []string `json:"riskFactors"`
	Recommendations  []string `json:"recommendations"`
	InsufficientData bool     `json:"insufficientData,omitempty"`
}

const riskWindowDays = 30
const minRiskMeasurements = 10
const minRiskSeriesPoints = 5

// PredictHealthRisk scores a patient's 30-day window with simple
// heuristics: sustained out-of-range averages and high variability each
// add to an integer score. Fewer than ten measurements is an
// insufficient-data result, not an error.
func (s *svc) PredictHealthRisk(ctx context.Context, patientID string) (RiskAssessment, error) {
	ctx, span := tracer.Start(ctx, "predict-health-risk")
	defer span.End()

	measurements, err := s.measurements.GetRecentMeasurements(ctx, patientID, riskWindowDays)
	if err != nil {
		return RiskAssessment{}, err
	}

	if len(measurements) < minRiskMeasurements {
		return RiskAssessment{
			PatientID:        patientID,
			InsufficientData: true,
		}, nil
	}

	score := 0
	factors := make([]string, 0)

	riskParams := []string{"heart_rate", "systolic_bp", "diastolic_bp", "blood_oxygen", "temperature"}

	for _, p := range vitalParameters {
		if !lo.Contains(riskParams, p.name) {
			continue
		}

		values := series(measurements, p)
		if len(values) < minRiskSeriesPoints {
			continue
		}

		avg := mean(values)

		switch p.name {
		case "heart_rate":
			if avg > 90 {
				score += 1
				factors = append(factors, fmt.Sprintf("Elevated average heart rate: %.1f BPM", avg))
			}
		case "systolic_bp":
			if avg > 135 {
				score += 2
				factors = append(factors, fmt.Sprintf("Elevated systolic blood pressure: %.1f mmHg", avg))
			}
		case "blood_oxygen":
			if avg < 94 {
				score += 3
				factors = append(factors, fmt.Sprintf("Low blood oxygen saturation: %.1f%%", avg))
			}
		}
	}

	for _, p := range vitalParameters {
		if !lo.Contains(riskParams, p.name) {
			continue
		}

		values := series(measurements, p)
		if len(values) < minRiskSeriesPoints {
			continue
		}

		avg := mean(values)
		if avg == 0 {
			continue
		}

		cv := stdDev(values) / avg
		if cv > 0.2 {
			score += 1
			factors = append(factors, fmt.Sprintf("High variability in %s", strings.ReplaceAll(p.name, "_", " ")))
		}
	}

	level := RiskLevelVeryLow
	switch {
	case score >= 5:
		level = RiskLevelHigh
	case score >= 3:
		level = RiskLevelMedium
	case score >= 1:
		level = RiskLevelLow
	}

	return RiskAssessment{
		PatientID:       patientID,
		RiskScore:       score,
		RiskLevel:       level,
		RiskFactors:     factors,
		Recommendations: recommendations(factors),
	}, nil
}

// recommendations keyword-matches each risk factor to advisory text.
func recommendations(factors []string) []string {
	recs := make([]string, 0)

	for _, factor := range factors {
		f := strings.ToLower(factor)
		switch {
		case strings.Contains(f, "heart rate"):
			recs = append(recs, "Consider consulting a cardiologist for heart rate management.")
		case strings.Contains(f, "blood pressure"):
			recs = append(recs, "Monitor blood pressure regularly and consider lifestyle modifications.")
		case strings.Contains(f, "blood oxygen"):
			recs = append(recs, "Seek medical attention for low blood oxygen levels.")
		case strings.Contains(f, "variability"):
			recs = append(recs, "Increased variability may indicate instability; consult with healthcare provider.")
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Continue with current monitoring regimen.")
	}

	return recs
}

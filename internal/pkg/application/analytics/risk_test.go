package analytics

import (
	"context"
	"strings"
	"testing"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/matryer/is"
)

func TestNineMeasurementsIsInsufficientData(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("heart_rate", 70, 71, 72, 73, 74, 75, 76, 77, 78), nil
		},
	})

	assessment, err := svc.PredictHealthRisk(ctx, "p-01")

	is.NoErr(err)
	is.True(assessment.InsufficientData)
	is.Equal(0, assessment.RiskScore)
}

func TestHealthyPatientScoresVeryLow(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("heart_rate", 70, 71, 72, 70, 69, 71, 72, 70, 71, 70), nil
		},
	})

	assessment, err := svc.PredictHealthRisk(ctx, "p-01")

	is.NoErr(err)
	is.True(!assessment.InsufficientData)
	is.Equal(0, assessment.RiskScore)
	is.Equal(RiskLevelVeryLow, assessment.RiskLevel)
	is.Equal(1, len(assessment.Recommendations))
	is.Equal("Continue with current monitoring regimen.", assessment.Recommendations[0])
}

func TestLowBloodOxygenScoresThree(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("blood_oxygen", 93, 93, 93, 93, 93, 93, 93, 93, 93, 93), nil
		},
	})

	assessment, err := svc.PredictHealthRisk(ctx, "p-01")

	is.NoErr(err)
	is.Equal(3, assessment.RiskScore)
	is.Equal(RiskLevelMedium, assessment.RiskLevel)
	is.Equal(1, len(assessment.RiskFactors))
	is.True(strings.Contains(assessment.RiskFactors[0], "blood oxygen"))
	is.Equal("Seek medical attention for low blood oxygen levels.", assessment.Recommendations[0])
}

func TestElevatedHeartRateScoresOne(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("heart_rate", 95, 96, 94, 95, 96, 95, 94, 95, 96, 95), nil
		},
	})

	assessment, err := svc.PredictHealthRisk(ctx, "p-01")

	is.NoErr(err)
	is.Equal(1, assessment.RiskScore)
	is.Equal(RiskLevelLow, assessment.RiskLevel)
	is.Equal("Consider consulting a cardiologist for heart rate management.", assessment.Recommendations[0])
}

func TestHighVariabilityAddsToScore(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	// mean 100, stddev well above 20: CV exceeds 0.2
	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("heart_rate", 60, 140, 60, 140, 60, 140, 60, 140, 60, 140), nil
		},
	})

	assessment, err := svc.PredictHealthRisk(ctx, "p-01")

	is.NoErr(err)
	// average of 100 adds one, variability adds another
	is.Equal(2, assessment.RiskScore)
	is.Equal(RiskLevelLow, assessment.RiskLevel)
	is.Equal(2, len(assessment.RiskFactors))
	is.True(strings.Contains(assessment.RiskFactors[1], "variability"))
}

func TestCombinedFactorsReachHighRisk(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			samples := vitalSamples("blood_oxygen", 92, 93, 92, 93, 92, 93, 92, 93, 92, 93)
			for i := range samples {
				samples[i].SystolicBP = f64(145)
			}
			return samples, nil
		},
	})

	assessment, err := svc.PredictHealthRisk(ctx, "p-01")

	is.NoErr(err)
	// systolic adds two, blood oxygen adds three
	is.Equal(5, assessment.RiskScore)
	is.Equal(RiskLevelHigh, assessment.RiskLevel)
}

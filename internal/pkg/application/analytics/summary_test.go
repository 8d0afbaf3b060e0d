package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/matryer/is"
)

func TestEmptyWindowYieldsZeroSummary(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return nil, nil
		},
	})

	summary, err := svc.GetVitalsSummary(ctx, "p-01", 7)

	is.NoErr(err)
	is.Equal("p-01", summary.PatientID)
	is.Equal(7, summary.TimePeriodDays)
	is.Equal(0, summary.TotalMeasurements)
	is.Equal(0, len(summary.Vitals))
	is.Equal(0, len(summary.Anomalies))
}

func TestSummaryStatsPerParameter(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("heart_rate", 60, 70, 80), nil
		},
	})

	summary, err := svc.GetVitalsSummary(ctx, "p-01", 7)

	is.NoErr(err)
	is.Equal(3, summary.TotalMeasurements)

	stats, ok := summary.Vitals["heart_rate"]
	is.True(ok)
	is.Equal(70.0, stats.Average)
	is.Equal(60.0, stats.Min)
	is.Equal(80.0, stats.Max)
	is.Equal(80.0, stats.Latest)
	is.Equal(10.0, stats.StdDev)
}

func TestSummarySkipsUnreportedParameters(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("temperature", 36.5, 36.8), nil
		},
	})

	summary, err := svc.GetVitalsSummary(ctx, "p-01", 7)

	is.NoErr(err)

	_, hasHeartRate := summary.Vitals["heart_rate"]
	is.True(!hasHeartRate)

	_, hasTemperature := summary.Vitals["temperature"]
	is.True(hasTemperature)
}

func TestDailyAveragesBucketByCalendarDate(t *testing.T) {
	is := is.New(t)

	day1 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	measurements := []types.Measurement{
		{HeartRate: f64(60), MeasurementTime: day1},
		{HeartRate: f64(80), MeasurementTime: day1.Add(4 * time.Hour)},
		{HeartRate: f64(90), MeasurementTime: day2},
	}

	averages := dailyAverages(measurements)

	is.Equal(70.0, averages["heart_rate"]["2025-06-01"])
	is.Equal(90.0, averages["heart_rate"]["2025-06-02"])
}

func TestSummaryIncludesAnomalies(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&MeasurementGetterMock{
		GetRecentMeasurementsFunc: func(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
			return vitalSamples("heart_rate", 72, 74, 155), nil
		},
	})

	summary, err := svc.GetVitalsSummary(ctx, "p-01", 7)

	is.NoErr(err)
	is.Equal(1, len(summary.Anomalies))
	is.Equal("heart_rate", summary.Anomalies[0].Parameter)
	is.Equal(155.0, summary.Anomalies[0].Value)
}

// vitalSamples builds a chronological series of measurements carrying a
// single parameter.
func vitalSamples(parameter string, values ...float64) []types.Measurement {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	samples := make([]types.Measurement, 0, len(values))
	for i, v := range values {
		value := v
		m := types.Measurement{
			ID:              fmt.Sprintf("m-%02d", i),
			PatientID:       "p-01",
			MeasurementTime: start.Add(time.Duration(i) * time.Hour),
		}

		switch parameter {
		case "heart_rate":
			m.HeartRate = &value
		case "systolic_bp":
			m.SystolicBP = &value
		case "diastolic_bp":
			m.DiastolicBP = &value
		case "blood_oxygen":
			m.BloodOxygen = &value
		case "temperature":
			m.Temperature = &value
		case "respiratory_rate":
			m.RespiratoryRate = &value
		}

		samples = append(samples, m)
	}

	return samples
}

func f64(v float64) *float64 {
	return &v
}

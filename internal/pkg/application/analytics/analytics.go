package analytics

import (
	"context"
	"math"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("patient-monitoring/analytics")

//go:generate moq -rm -out analytics_mock.go . Service
type Service interface {
	GetVitalsSummary(ctx context.Context, patientID string, days int) (VitalsSummary, error)
	PredictHealthRisk(ctx context.Context, patientID string) (RiskAssessment, error)
}

//go:generate moq -rm -out measurementgetter_mock.go . MeasurementGetter
type MeasurementGetter interface {
	GetRecentMeasurements(ctx context.Context, patientID string, days int) ([]types.Measurement, error)
}

type svc struct {
	measurements MeasurementGetter
}

func New(measurements MeasurementGetter) Service {
	return &svc{measurements: measurements}
}

// vitalParameter names a vital field and knows how to read it off a
// measurement. The analytics pipeline iterates this table instead of
// switching on field names everywhere.
type vitalParameter struct {
	name  string
	value func(m types.Measurement) *float64
}

var vitalParameters = []vitalParameter{
	{"heart_rate", func(m types.Measurement) *float64 { return m.HeartRate }},
	{"systolic_bp", func(m types.Measurement) *float64 { return m.SystolicBP }},
	{"diastolic_bp", func(m types.Measurement) *float64 { return m.DiastolicBP }},
	{"blood_oxygen", func(m types.Measurement) *float64 { return m.BloodOxygen }},
	{"temperature", func(m types.Measurement) *float64 { return m.Temperature }},
	{"respiratory_rate", func(m types.Measurement) *float64 { return m.RespiratoryRate }},
}

// series extracts the non-null values of one parameter, preserving the
// chronological order of the input.
func series(measurements []types.Measurement, p vitalParameter) []float64 {
	values := make([]float64, 0, len(measurements))
	for _, m := range measurements {
		if v := p.value(m); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the sample standard deviation. Fewer than two points have no
// spread to speak of.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

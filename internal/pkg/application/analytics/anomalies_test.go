package analytics

import (
	"testing"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/matryer/is"
)

func TestBoundaryValuesAreNotAnomalies(t *testing.T) {
	is := is.New(t)

	anomalies := detectAnomalies(vitalSamples("heart_rate", 60, 100))

	is.Equal(0, len(anomalies))
}

func TestValueJustAboveRangeIsMediumAnomaly(t *testing.T) {
	is := is.New(t)

	anomalies := detectAnomalies(vitalSamples("heart_rate", 101))

	is.Equal(1, len(anomalies))
	is.Equal("heart_rate", anomalies[0].Parameter)
	is.Equal(types.SeverityMedium, anomalies[0].Severity)
}

func TestExtremeHeartRateIsHighSeverity(t *testing.T) {
	is := is.New(t)

	anomalies := detectAnomalies(vitalSamples("heart_rate", 151))

	is.Equal(1, len(anomalies))
	is.Equal(types.SeverityHigh, anomalies[0].Severity)
}

func TestVeryLowBloodOxygenIsHighSeverity(t *testing.T) {
	is := is.New(t)

	anomalies := detectAnomalies(vitalSamples("blood_oxygen", 91))

	is.Equal(1, len(anomalies))
	is.Equal(types.SeverityHigh, anomalies[0].Severity)
}

func TestMildlyLowBloodOxygenIsMediumSeverity(t *testing.T) {
	is := is.New(t)

	anomalies := detectAnomalies(vitalSamples("blood_oxygen", 93))

	is.Equal(1, len(anomalies))
	is.Equal(types.SeverityMedium, anomalies[0].Severity)
}

func TestEveryOutOfRangeValueIsReported(t *testing.T) {
	is := is.New(t)

	anomalies := detectAnomalies(vitalSamples("systolic_bp", 150, 120, 85, 155))

	is.Equal(3, len(anomalies))
	is.Equal(150.0, anomalies[0].Value)
	is.Equal(85.0, anomalies[1].Value)
	is.Equal(155.0, anomalies[2].Value)
}

package analytics

import (
	"testing"

	"github.com/matryer/is"
)

func TestFitRequiresThreePoints(t *testing.T) {
	is := is.New(t)

	result := fitTrend([]float64{120, 130})

	is.Equal("insufficient_data", result.Trend)
	is.Equal(ConfidenceNone, result.Confidence)
}

func TestPerfectLineHasHighConfidence(t *testing.T) {
	is := is.New(t)

	result := fitTrend([]float64{100, 110, 120, 130, 140})

	is.Equal("increasing", result.Trend)
	is.Equal(10.0, result.Slope)
	is.Equal(1.0, result.RSquared)
	is.Equal(ConfidenceHigh, result.Confidence)
}

func TestFallingLineIsDecreasing(t *testing.T) {
	is := is.New(t)

	result := fitTrend([]float64{98, 97, 96, 95})

	is.Equal("decreasing", result.Trend)
	is.True(result.Slope < 0)
}

func TestNearFlatSlopeIsStable(t *testing.T) {
	is := is.New(t)

	result := fitTrend([]float64{70, 70.05, 70.1, 70.02, 70.08})

	is.Equal("stable", result.Trend)
}

func TestConstantSeriesHasZeroRSquared(t *testing.T) {
	is := is.New(t)

	result := fitTrend([]float64{85, 85, 85, 85})

	is.Equal("stable", result.Trend)
	is.Equal(0.0, result.RSquared)
	is.Equal(ConfidenceLow, result.Confidence)
}

func TestNoisySeriesHasLowConfidence(t *testing.T) {
	is := is.New(t)

	result := fitTrend([]float64{70, 90, 65, 95, 72, 88})

	is.True(result.RSquared < 0.4)
	is.Equal(ConfidenceLow, result.Confidence)
}

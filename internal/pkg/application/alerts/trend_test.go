package alerts

import (
	"testing"

	"github.com/matryer/is"
)

func TestTrendRequiresThreeValues(t *testing.T) {
	is := is.New(t)

	is.Equal(TrendInsufficientData, classifyTrend([]float64{}))
	is.Equal(TrendInsufficientData, classifyTrend([]float64{60, 62}))
}

func TestStrictlyClimbingSeriesIsIncreasing(t *testing.T) {
	is := is.New(t)

	is.Equal(TrendIncreasing, classifyTrend([]float64{60, 62, 64, 66, 68}))
}

func TestStrictlyFallingSeriesIsDecreasing(t *testing.T) {
	is := is.New(t)

	is.Equal(TrendDecreasing, classifyTrend([]float64{80, 76, 72, 68, 64}))
}

func TestJitterySeriesIsStable(t *testing.T) {
	is := is.New(t)

	is.Equal(TrendStable, classifyTrend([]float64{60, 65, 62, 70, 68}))
}

func TestOnlyLastFiveValuesCount(t *testing.T) {
	is := is.New(t)

	// the early plateau falls outside the window
	series := []float64{70, 70, 70, 60, 62, 64, 66, 68}

	is.Equal(TrendIncreasing, classifyTrend(series))
}

func TestFlatSeriesIsStable(t *testing.T) {
	is := is.New(t)

	is.Equal(TrendStable, classifyTrend([]float64{70, 70, 70, 70, 70}))
}

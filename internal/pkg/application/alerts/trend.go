package alerts

const (
	TrendInsufficientData = "insufficient_data"
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
)

// classifyTrend labels the short-term trajectory of a chronological
// series. Only the last five points are considered, and the label is a
// strict monotonicity check: one reversal collapses it to stable. This is
// intentionally not a slope fit; the analytics package has one of those.
func classifyTrend(values []float64) string {
	if len(values) < 3 {
		return TrendInsufficientData
	}

	recent := values
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	increasing := true
	decreasing := true

	for i := 0; i < len(recent)-1; i++ {
		if recent[i] >= recent[i+1] {
			increasing = false
		}
		if recent[i] <= recent[i+1] {
			decreasing = false
		}
	}

	switch {
	case increasing:
		return TrendIncreasing
	case decreasing:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

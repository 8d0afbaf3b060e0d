package analytics

import (
	"math"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceNone   = "none"
)

type TrendResult struct {
	Trend      string  `json:"trend"`
	Slope      float64 `json:"slope"`
	RSquared   float64 `json:"rSquared"`
	Confidence string  `json:"confidence"`
}

// fitTrend runs a degree-1 least-squares fit of value against sequential
// index and labels the direction from the slope. This is the statistical
// sibling of the monotonicity check in the alerts package; the two serve
// different callers and stay separate.
func fitTrend(values []float64) TrendResult {
	if len(values) < 3 {
		return TrendResult{
			Trend:      "insufficient_data",
			Confidence: ConfidenceNone,
		}
	}

	n := float64(len(values))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n

	var ssRes, ssTot float64
	for i, y := range values {
		pred := slope*float64(i) + intercept
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - meanY) * (y - meanY)
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	trend := "stable"
	if math.Abs(slope) >= 0.1 {
		if slope > 0 {
			trend = "increasing"
		} else {
			trend = "decreasing"
		}
	}

	confidence := ConfidenceLow
	if rSquared > 0.7 {
		confidence = ConfidenceHigh
	} else if rSquared > 0.4 {
		confidence = ConfidenceMedium
	}

	return TrendResult{
		Trend:      trend,
		Slope:      slope,
		RSquared:   rSquared,
		Confidence: confidence,
	}
}

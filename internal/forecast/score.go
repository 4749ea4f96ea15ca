// Package forecast contains the towing-stress scoring core: pure functions
// that turn daily weather observations into a bounded stress score, comfort
// labels and plain-English summaries.
package forecast

import "math"

// Stress score tuning. Wind only counts above a floor; each component
// saturates independently before the total is clamped to [0,100].
const (
	windFloorKmh  = 10.0
	windCapPoints = 50.0
	gustFloorKmh  = 30.0
	gustCapPoints = 30.0
	rainCapPoints = 20.0

	// AverageWindFactor derives the "average" wind figure from the daily
	// peak. It is a fixed heuristic, not a true average.
	AverageWindFactor = 0.7
)

// Park-up thresholds. These are a business rule independent of the stress
// score's internal caps.
const (
	parkUpAvgWindKmh = 30.0
	parkUpGustKmh    = 40.0
)

// StressScore converts wind and rain observations into a 0-100 towing
// stress score. Inputs are km/h and mm and must be non-negative; the result
// is clamped then rounded, and clamped again so it can never leave [0,100].
func StressScore(avgWindKmh, gustKmh, rainMm float64) int {
	score := 0.0

	if avgWindKmh > windFloorKmh {
		score += math.Min(windCapPoints, (avgWindKmh-windFloorKmh)*2.0)
	}

	if gustKmh > gustFloorKmh {
		score += math.Min(gustCapPoints, (gustKmh-gustFloorKmh)*2.0)
	}

	score += math.Min(rainCapPoints, rainMm*2.0)

	clamped := math.Max(0.0, math.Min(100.0, score))
	rounded := int(math.Round(clamped))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

// AverageWind derives the average wind figure from a daily peak wind speed,
// rounded to one decimal place.
func AverageWind(peakKmh float64) float64 {
	return round1(peakKmh * AverageWindFactor)
}

// KmhToKnots converts a speed in km/h to knots, rounded to one decimal place.
func KmhToKnots(kmh float64) float64 {
	return round1(kmh / 1.852)
}

// ParkUp reports whether conditions warrant parking up rather than towing.
func ParkUp(avgWindKmh, gustKmh float64) bool {
	return avgWindKmh >= parkUpAvgWindKmh || gustKmh >= parkUpGustKmh
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

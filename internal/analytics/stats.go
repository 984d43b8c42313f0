package analytics

import (
	"math"
	"sort"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// computeStats calculates descriptive statistics for a slice of values.
// Returns nil for an empty slice so callers report "no data" rather than
// a fabricated zero.
func computeStats(values []float64) *domain.MetricStats {
	if len(values) == 0 {
		return nil
	}

	sum := 0.0
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		sum += v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	mean := sum / float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return &domain.MetricStats{
		Count:  len(values),
		Mean:   round2(mean),
		Median: round2(median(values)),
		Std:    round2(std),
		Min:    round2(minVal),
		Max:    round2(maxVal),
	}
}

// median returns the median of values without mutating the input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
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

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

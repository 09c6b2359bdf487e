package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// calculateRSquared returns 1 - SS_res/SS_tot, or 0 when y has no variance.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	var ssTot, ssRes float64
	for i := range observed {
		d := observed[i] - mean
		r := observed[i] - predicted[i]
		ssTot += d * d
		ssRes += r * r
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - ssRes/ssTot
}

// calculateRMSE returns √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return math.Sqrt(MeanSquaredError(observed, predicted))
}

// MeanSquaredError returns mean((observed - predicted)²), or 0 for empty input.
// The slices must have the same length.
func MeanSquaredError(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		r := observed[i] - predicted[i]
		sumSq += r * r
	}

	return sumSq / float64(len(observed))
}

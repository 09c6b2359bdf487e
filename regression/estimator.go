package regression

import "fmt"

// Estimator predicts y for a given x.
type Estimator interface {
	// Estimate returns the predicted y at x.
	Estimate(x float64) float64
	// Coefficients returns [slope, intercept].
	Coefficients() []float64
	// SetCoefficients replaces the coefficients; it expects exactly [slope, intercept].
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements y = slope*x + intercept.
type LinearEstimator struct {
	slope, intercept float64
	coeffs           []float64 // reused by Coefficients
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates an estimator for the given line.
func NewLinearEstimator(slope, intercept float64) *LinearEstimator {
	return &LinearEstimator{
		slope:     slope,
		intercept: intercept,
		coeffs:    make([]float64, 2),
	}
}

// Estimate returns slope*x + intercept.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.slope*x + l.intercept
}

// Coefficients returns [slope, intercept]. The slice is reused between calls.
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.slope
	l.coeffs[1] = l.intercept

	return l.coeffs
}

// SetCoefficients updates the line from [slope, intercept].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.slope = coeffs[0]
	l.intercept = coeffs[1]

	return nil
}

// EstimateAll applies e to every x and returns the predictions.
func EstimateAll(e Estimator, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = e.Estimate(x)
	}

	return out
}

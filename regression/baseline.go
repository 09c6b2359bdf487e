package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/sigkit/errs"
)

// FitBaseline fits the series with gonum's stat.LinearRegression.
//
// It serves as the reference implementation for FitLeastSquares and
// FitGradientDescent and has the same error behavior as FitLeastSquares.
func FitBaseline(s Series) (*Model, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.constantX() {
		return nil, fmt.Errorf("baseline over %d samples with x = %g: %w", s.Len(), s.X[0], errs.ErrDegenerateInput)
	}

	intercept, slope := stat.LinearRegression(s.X, s.Y, nil, false)

	return newModel(MethodBaseline, s, slope, intercept), nil
}

// Comparison holds the three estimators' fits of one series.
type Comparison struct {
	LeastSquares *Model
	Descent      *DescentResult
	Baseline     *Model
}

// Compare fits s with least squares, gradient descent (configured by opts) and the baseline.
func Compare(s Series, opts ...DescentOption) (*Comparison, error) {
	ls, err := FitLeastSquares(s)
	if err != nil {
		return nil, err
	}

	gd, err := FitGradientDescent(s, opts...)
	if err != nil {
		return nil, err
	}

	base, err := FitBaseline(s)
	if err != nil {
		return nil, err
	}

	return &Comparison{LeastSquares: ls, Descent: gd, Baseline: base}, nil
}

// Deviation returns |Δslope| and |Δintercept| between m and the baseline.
func (c *Comparison) Deviation(m *Model) (slope, intercept float64) {
	return math.Abs(m.Slope - c.Baseline.Slope), math.Abs(m.Intercept - c.Baseline.Intercept)
}

// MaxDeviation returns the largest absolute parameter difference between
// either hand-written estimator and the baseline. It is NaN if gradient
// descent diverged to NaN.
func (c *Comparison) MaxDeviation() float64 {
	lsSlope, lsIntercept := c.Deviation(c.LeastSquares)
	gdSlope, gdIntercept := c.Deviation(&c.Descent.Model)

	maxDev := 0.0
	for _, d := range []float64{lsSlope, lsIntercept, gdSlope, gdIntercept} {
		if math.IsNaN(d) {
			return math.NaN()
		}
		maxDev = math.Max(maxDev, d)
	}

	return maxDev
}

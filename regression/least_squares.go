package regression

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/sigkit/errs"
)

// FitLeastSquares fits a line by ordinary least squares.
//
//	slope     = Σ((xᵢ - x̄)(yᵢ - ȳ)) / Σ((xᵢ - x̄)²)
//	intercept = ȳ - slope·x̄
//
// Returns errs.ErrInvalidSeries for a malformed series and
// errs.ErrDegenerateInput when every x is identical.
func FitLeastSquares(s Series) (*Model, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.constantX() {
		return nil, fmt.Errorf("least squares over %d samples with x = %g: %w", s.Len(), s.X[0], errs.ErrDegenerateInput)
	}

	meanX := stat.Mean(s.X, nil)
	meanY := stat.Mean(s.Y, nil)

	var num, den float64
	for i := range s.X {
		dx := s.X[i] - meanX
		num += dx * (s.Y[i] - meanY)
		den += dx * dx
	}
	if den == 0 {
		return nil, fmt.Errorf("least squares: zero x variance: %w", errs.ErrDegenerateInput)
	}

	slope := num / den
	intercept := meanY - slope*meanX

	return newModel(MethodLeastSquares, s, slope, intercept), nil
}

package regression

import (
	"fmt"

	"github.com/arloliu/sigkit/errs"
)

// Series is an ordered set of (x, y) samples.
type Series struct {
	X []float64
	Y []float64
}

// NewSeries pairs x and y into a Series.
//
// Returns errs.ErrInvalidSeries when the lengths differ or fewer than two
// samples are given. The slices are referenced, not copied.
func NewSeries(x, y []float64) (Series, error) {
	s := Series{X: x, Y: y}
	if err := s.validate(); err != nil {
		return Series{}, err
	}

	return s, nil
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.X)
}

func (s Series) validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d x values vs %d y values", errs.ErrInvalidSeries, len(s.X), len(s.Y))
	}
	if len(s.X) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", errs.ErrInvalidSeries, len(s.X))
	}

	return nil
}

// constantX reports whether every x equals the first one.
func (s Series) constantX() bool {
	for _, v := range s.X[1:] {
		if v != s.X[0] {
			return false
		}
	}

	return true
}

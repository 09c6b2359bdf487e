package filter

import (
	"slices"

	"github.com/arloliu/sigkit/internal/pool"
)

// PadLen returns the number of samples FiltFilt adds at each end of a signal
// of length n filtered with c: min(3·max(len(B), len(A)), n-1).
func PadLen(c Coefficients, n int) int {
	return max(min(3*max(len(c.B), len(c.A)), n-1), 0)
}

// FiltFilt applies c forward and then backward over x, cancelling the phase
// delay of a single pass. The magnitude response is squared, so a
// Butterworth design of order n attenuates like one of order 2n.
//
// See the package documentation for edge handling.
func FiltFilt(c Coefficients, x []float64) ([]float64, error) {
	b, a, err := c.normalized()
	if err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return []float64{}, nil
	}

	zi, err := steadyState(b, a)
	if err != nil {
		return nil, err
	}

	edge := PadLen(c, len(x))
	ext, release := pool.GetFloat64Slice(len(x) + 2*edge)
	defer release()

	oddExtend(x, edge, ext)

	z := make([]float64, len(zi))
	scaled(zi, ext[0], z)
	lfilter(b, a, ext, ext, z)

	slices.Reverse(ext)
	scaled(zi, ext[0], z)
	lfilter(b, a, ext, ext, z)
	slices.Reverse(ext)

	return slices.Clone(ext[edge : edge+len(x)]), nil
}

// oddExtend writes x into dst with edge samples of odd reflection about x[0]
// before it and about x[len(x)-1] after it. dst must hold len(x)+2·edge values.
func oddExtend(x []float64, edge int, dst []float64) {
	n := len(x)
	first, last := x[0], x[n-1]
	for i := range edge {
		dst[i] = 2*first - x[edge-i]
		dst[edge+n+i] = 2*last - x[n-2-i]
	}
	copy(dst[edge:], x)
}

func scaled(src []float64, k float64, dst []float64) {
	for i, v := range src {
		dst[i] = v * k
	}
}

// LowPass smooths x with a zero-phase Butterworth low-pass filter.
//
// The design uses Order, CutoffHz and SampleRateHz from DefaultParams
// overridden by opts, with Wn = CutoffHz / (SampleRateHz/2). The cutoff must
// lie strictly between 0 and the Nyquist frequency, otherwise
// errs.ErrInvalidParameter is returned.
func LowPass(x []float64, opts ...Option) ([]float64, error) {
	p, err := NewParams(opts...)
	if err != nil {
		return nil, err
	}
	if err := p.validateLowPass(); err != nil {
		return nil, err
	}

	coeffs, err := Butterworth(p.Order, p.NormalizedCutoff())
	if err != nil {
		return nil, err
	}

	return FiltFilt(coeffs, x)
}

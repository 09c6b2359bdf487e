package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/arloliu/sigkit/errs"
)

// Coefficients is a digital transfer function H(z) = B(z)/A(z) with
// coefficients in descending powers of z. A[0] is 1 for designed filters.
type Coefficients struct {
	B []float64
	A []float64
}

// Order returns the filter order, max(len(B), len(A)) - 1.
func (c Coefficients) Order() int {
	return max(len(c.B), len(c.A)) - 1
}

// Gain returns |H| at the normalized frequency wn, where 1 is the Nyquist
// frequency. Gain(0) is the DC gain.
func (c Coefficients) Gain(wn float64) float64 {
	zInv := cmplx.Exp(complex(0, -math.Pi*wn))

	return cmplx.Abs(evalPoly(c.B, zInv) / evalPoly(c.A, zInv))
}

// evalPoly evaluates Σ coeffs[k]·zInv^k.
func evalPoly(coeffs []float64, zInv complex128) complex128 {
	var sum complex128
	pow := complex(1, 0)
	for _, v := range coeffs {
		sum += complex(v, 0) * pow
		pow *= zInv
	}

	return sum
}

// Butterworth designs a digital low-pass Butterworth filter of the given
// order with normalized cutoff wn in (0, 1), where 1 is the Nyquist frequency.
//
// The design places the analog prototype poles on the unit circle, scales
// them to the pre-warped cutoff and maps them to the z-plane with the
// bilinear transform; all n zeros land on z = -1. The result is expanded to
// transfer-function form with A[0] = 1 and unit gain at DC.
func Butterworth(order int, wn float64) (Coefficients, error) {
	if order < 1 {
		return Coefficients{}, fmt.Errorf("%w: order must be >= 1, got %d", errs.ErrInvalidParameter, order)
	}
	if !(wn > 0 && wn < 1) {
		return Coefficients{}, fmt.Errorf("%w: normalized cutoff must be in (0, 1), got %g", errs.ErrInvalidParameter, wn)
	}

	// Bilinear transform with fs = 2, so 2·fs = 4.
	const fs2 = 4.0
	warped := fs2 * math.Tan(math.Pi*wn/2)

	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		analog := -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*order)))
		poles = append(poles, analog*complex(warped, 0))
	}

	gain := math.Pow(warped, float64(order))
	den := complex(1, 0)
	digital := make([]complex128, order)
	for i, p := range poles {
		den *= complex(fs2, 0) - p
		digital[i] = (complex(fs2, 0) + p) / (complex(fs2, 0) - p)
	}
	gain *= real(1 / den)

	zeros := make([]complex128, order)
	for i := range zeros {
		zeros[i] = -1
	}

	b := realPart(polyFromRoots(zeros))
	for i := range b {
		b[i] *= gain
	}

	return Coefficients{B: b, A: realPart(polyFromRoots(digital))}, nil
}

// polyFromRoots expands Π(z - rᵢ) into coefficients in descending powers.
func polyFromRoots(roots []complex128) []complex128 {
	coeffs := make([]complex128, 1, len(roots)+1)
	coeffs[0] = 1
	for _, r := range roots {
		coeffs = append(coeffs, 0)
		for i := len(coeffs) - 1; i > 0; i-- {
			coeffs[i] -= r * coeffs[i-1]
		}
	}

	return coeffs
}

// realPart drops the imaginary residue left by conjugate pole pairs.
func realPart(c []complex128) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}

	return out
}

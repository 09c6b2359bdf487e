package filter

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/sigkit/errs"
)

// normalized returns b and a padded to a common length n and divided by a[0].
func (c Coefficients) normalized() (b, a []float64, err error) {
	if len(c.A) == 0 || len(c.B) == 0 {
		return nil, nil, fmt.Errorf("%w: empty filter coefficients", errs.ErrInvalidParameter)
	}
	if c.A[0] == 0 {
		return nil, nil, fmt.Errorf("%w: leading denominator coefficient is zero", errs.ErrInvalidParameter)
	}

	n := max(len(c.A), len(c.B))
	b = make([]float64, n)
	a = make([]float64, n)
	for i, v := range c.B {
		b[i] = v / c.A[0]
	}
	for i, v := range c.A {
		a[i] = v / c.A[0]
	}

	return b, a, nil
}

// lfilter runs the direct form II transposed recursion over x, writing into
// out, which may alias x. z holds len(a)-1 delay states and is updated in
// place. b and a must be normalized.
func lfilter(b, a, x, out, z []float64) {
	n := len(a)
	if n == 1 {
		for i, v := range x {
			out[i] = b[0] * v
		}

		return
	}

	last := n - 2
	for i, v := range x {
		y := b[0]*v + z[0]
		for j := range last {
			z[j] = b[j+1]*v + z[j+1] - a[j+1]*y
		}
		z[last] = b[last+1]*v - a[last+1]*y
		out[i] = y
	}
}

// steadyState returns the delay states of a filter that has been fed a unit
// step forever. Scaling them by x₀ starts lfilter without a transient for a
// signal that begins at x₀.
//
// The states solve (I - Cᵀ)·zi = b[1:] - a[1:]·b[0], where C is the
// companion matrix of a.
func steadyState(b, a []float64) ([]float64, error) {
	n := len(a) - 1
	if n == 0 {
		return []float64{}, nil
	}

	m := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := range n {
		m.Set(i, i, 1)
		m.Set(i, 0, m.At(i, 0)+a[i+1])
		if i < n-1 {
			m.Set(i, i+1, -1)
		}
		rhs.SetVec(i, b[i+1]-a[i+1]*b[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(m, rhs); err != nil {
		// An ill-conditioned but finite solution is still usable; very low
		// cutoffs at high orders put poles close to z = 1.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: filter has no steady state: %w", errs.ErrInvalidParameter, err)
		}
	}

	states := mat.Col(nil, 0, &zi)
	for _, v := range states {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: filter has no finite steady state", errs.ErrInvalidParameter)
		}
	}

	return states, nil
}

// Filter applies the transfer function once, forward, starting from rest.
// It is the one-directional building block of FiltFilt and introduces the
// usual phase delay.
func Filter(c Coefficients, x []float64) ([]float64, error) {
	b, a, err := c.normalized()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	lfilter(b, a, x, out, make([]float64, len(a)-1))

	return out, nil
}

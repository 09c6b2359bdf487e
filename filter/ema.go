package filter

// EMA smooths x with an exponential moving average:
//
//	out[0] = x[0]
//	out[i] = α·x[i] + (1-α)·out[i-1]
//
// α comes from WithAlpha (default 0.2) and must lie in (0, 1]; α = 1 returns
// a copy of x. Invalid α yields errs.ErrInvalidParameter.
func EMA(x []float64, opts ...Option) ([]float64, error) {
	p, err := NewParams(opts...)
	if err != nil {
		return nil, err
	}
	if err := p.validateEMA(); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	if len(x) == 0 {
		return out, nil
	}

	alpha := p.Alpha
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = alpha*x[i] + (1-alpha)*out[i-1]
	}

	return out, nil
}

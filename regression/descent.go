package regression

// FitGradientDescent fits a line by batch gradient descent on the mean squared error.
//
// Slope and intercept start at 0. Each iteration uses the full series:
//
//	residualᵢ      = yᵢ - (slope·xᵢ + intercept)
//	loss           = mean(residualᵢ²)            (appended to LossTrace)
//	gradSlope      = (-2/N)·Σ(xᵢ·residualᵢ)
//	gradIntercept  = (-2/N)·Σ(residualᵢ)
//	slope         -= η·gradSlope
//	intercept     -= η·gradIntercept
//
// The defaults are η = 0.01 and T = 1000; override them with WithLearningRate
// and WithIterations. Invalid values yield errs.ErrInvalidParameter and a
// malformed series yields errs.ErrInvalidSeries.
//
// Divergence is not an error: parameters that overflow to ±Inf or NaN are
// returned as computed. Use DescentResult.Diverged to detect it.
func FitGradientDescent(s Series, opts ...DescentOption) (*DescentResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	cfg, err := newDescentConfig(opts...)
	if err != nil {
		return nil, err
	}

	slope, intercept, trace := descend(s.X, s.Y, cfg.LearningRate, cfg.Iterations)

	return &DescentResult{
		Model:        *newModel(MethodGradientDescent, s, slope, intercept),
		LossTrace:    trace,
		LearningRate: cfg.LearningRate,
		Iterations:   cfg.Iterations,
	}, nil
}

// descend runs the update loop; x and y must have equal, non-zero length.
func descend(x, y []float64, rate float64, iterations int) (slope, intercept float64, trace []float64) {
	n := float64(len(x))
	trace = make([]float64, iterations)

	for it := range iterations {
		var sumSq, sumXR, sumR float64
		for i := range x {
			residual := y[i] - (slope*x[i] + intercept)
			sumSq += residual * residual
			sumXR += x[i] * residual
			sumR += residual
		}
		trace[it] = sumSq / n

		gradSlope := (-2 / n) * sumXR
		gradIntercept := (-2 / n) * sumR
		slope -= rate * gradSlope
		intercept -= rate * gradIntercept
	}

	return slope, intercept, trace
}

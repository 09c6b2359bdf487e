// Package regression fits straight lines y = slope*x + intercept to sample series.
//
// Three estimators are provided:
//
//   - FitLeastSquares: closed-form ordinary least squares.
//   - FitGradientDescent: batch gradient descent on the mean squared error,
//     starting from slope = intercept = 0, recording the loss of every iteration.
//   - FitBaseline: gonum's stat.LinearRegression, used as the reference the
//     hand-written estimators are compared against.
//
// # Usage
//
//	series, err := regression.NewSeries(x, y)
//	if err != nil {
//	    return err
//	}
//
//	ls, err := regression.FitLeastSquares(series)
//	if err != nil {
//	    return err // errs.ErrDegenerateInput when every x is identical
//	}
//	fmt.Println(ls.Formula) // y = 2.500 * x + 1.000
//
//	gd, err := regression.FitGradientDescent(series,
//	    regression.WithLearningRate(0.01),
//	    regression.WithIterations(1000),
//	)
//	if err != nil {
//	    return err // errs.ErrInvalidParameter for a bad learning rate or iteration count
//	}
//	fmt.Println(gd.Slope, gd.Intercept, len(gd.LossTrace))
//
// Compare runs all three estimators on the same series:
//
//	cmp, err := regression.Compare(series)
//	fmt.Printf("max deviation from baseline: %.4f\n", cmp.MaxDeviation())
//
// # Numerics
//
// All arithmetic is plain float64. Gradient descent does not guard against
// divergence: a learning rate that is too large drives the parameters to
// ±Inf or NaN and those values are returned unchanged, together with the
// loss trace that led there. Identical inputs always produce bit-identical
// results.
//
// Every function is pure and safe for concurrent use; input slices are never
// modified.
package regression

// Package sigkit fits straight lines to sample series and smooths uniformly
// sampled signals.
//
// It bundles four routines that are independent of each other:
//
//   - LinearRegressionFit: closed-form least squares.
//   - GradientDescentFit: batch gradient descent on the mean squared error,
//     returning the loss of every iteration.
//   - LowPassFilter: zero-phase Butterworth low-pass filtering.
//   - ExponentialMovingAverageFilter: first-order exponential smoothing.
//
// # Basic Usage
//
//	import "github.com/arloliu/sigkit"
//
//	model, err := sigkit.LinearRegressionFit(x, y)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(model.Formula) // y = 2.500 * x + 1.000
//
//	gd, err := sigkit.GradientDescentFit(x, y,
//	    regression.WithLearningRate(0.01),
//	    regression.WithIterations(1000),
//	)
//
//	smooth, err := sigkit.LowPassFilter(noisy,
//	    filter.WithSampleRate(1000),
//	    filter.WithCutoff(5),
//	    filter.WithOrder(4),
//	)
//
//	ema, err := sigkit.ExponentialMovingAverageFilter(noisy, filter.WithAlpha(0.2))
//
// Results can be handed to a presentation layer as a snapshot:
//
//	enc, _ := sigkit.NewSnapshotEncoder()
//	_ = enc.Add("filtered", smooth)
//	data, _ := enc.Finish()
//
// # Package Structure
//
// This package provides top-level wrappers around the regression, filter and
// snapshot packages. Use those packages directly for the building blocks
// (series validation, estimator comparison, filter design, one-pass
// filtering) and signal for synthetic test inputs.
//
// Every error is one of the sentinels in the errs package, wrapped with
// context; match it with errors.Is.
package sigkit

import (
	"github.com/arloliu/sigkit/filter"
	"github.com/arloliu/sigkit/internal/hash"
	"github.com/arloliu/sigkit/regression"
	"github.com/arloliu/sigkit/snapshot"
)

// LinearRegressionFit fits y = slope·x + intercept by ordinary least squares.
//
// Parameters:
//   - x, y: Sample coordinates, equal length and at least 2 samples
//
// Returns:
//   - *regression.Model: Slope, intercept, R², RMSE and formula
//   - error: errs.ErrInvalidSeries for malformed input, errs.ErrDegenerateInput
//     when every x is identical
func LinearRegressionFit(x, y []float64) (*regression.Model, error) {
	s, err := regression.NewSeries(x, y)
	if err != nil {
		return nil, err
	}

	return regression.FitLeastSquares(s)
}

// GradientDescentFit fits y = slope·x + intercept by batch gradient descent
// starting from zero.
//
// Available options:
//   - regression.WithLearningRate(η), default 0.01
//   - regression.WithIterations(T), default 1000
//
// Divergence is not an error; check DescentResult.Diverged.
//
// Example:
//
//	res, err := sigkit.GradientDescentFit(x, y, regression.WithLearningRate(0.05))
//	fmt.Println(res.Slope, res.Intercept, res.FinalLoss())
func GradientDescentFit(x, y []float64, opts ...regression.DescentOption) (*regression.DescentResult, error) {
	s, err := regression.NewSeries(x, y)
	if err != nil {
		return nil, err
	}

	return regression.FitGradientDescent(s, opts...)
}

// LowPassFilter applies a zero-phase Butterworth low-pass filter to signal.
//
// Available options:
//   - filter.WithOrder(n), default 4
//   - filter.WithCutoff(hz), default 5
//   - filter.WithSampleRate(hz), default 1000
//
// The output has the same length as signal. It returns errs.ErrInvalidParameter
// unless 0 < cutoff < sampleRate/2.
func LowPassFilter(signal []float64, opts ...filter.Option) ([]float64, error) {
	return filter.LowPass(signal, opts...)
}

// ExponentialMovingAverageFilter smooths signal with
// out[i] = α·signal[i] + (1-α)·out[i-1], out[0] = signal[0].
//
// α is set with filter.WithAlpha (default 0.2) and must lie in (0, 1].
func ExponentialMovingAverageFilter(signal []float64, opts ...filter.Option) ([]float64, error) {
	return filter.EMA(signal, opts...)
}

// NewSnapshotEncoder creates a snapshot encoder. The default payload codec is Zstd.
//
// Example:
//
//	enc, err := sigkit.NewSnapshotEncoder(snapshot.WithCompression(format.CompressionS2))
func NewSnapshotEncoder(opts ...snapshot.EncoderOption) (*snapshot.Encoder, error) {
	return snapshot.NewEncoder(opts...)
}

// DecodeSnapshot parses and verifies a snapshot.
func DecodeSnapshot(data []byte) (*snapshot.Snapshot, error) {
	return snapshot.Decode(data)
}

// SeriesID returns the ID a snapshot stores for a series name (its xxHash64).
func SeriesID(name string) uint64 {
	return hash.ID(name)
}

package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/signal"
)

// noisyLine builds y = slope*x + intercept + N(0, std²) on linspace(0, 10, n).
func noisyLine(t *testing.T, n int, slope, intercept, std float64, seed uint64) Series {
	t.Helper()

	x := signal.Linspace(0, 10, n)
	noise, err := signal.NewNoise(seed).Gaussian(n, 0, std)
	require.NoError(t, err)
	y, err := signal.Add(signal.Line(x, slope, intercept), noise)
	require.NoError(t, err)

	s, err := NewSeries(x, y)
	require.NoError(t, err)

	return s
}

func TestNewSeries(t *testing.T) {
	_, err := NewSeries([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidSeries)

	_, err = NewSeries([]float64{1}, []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidSeries)

	s, err := NewSeries([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
}

func TestFitLeastSquares(t *testing.T) {
	t.Run("exact line", func(t *testing.T) {
		x := []float64{0, 1, 2, 3, 4}
		s, err := NewSeries(x, signal.Line(x, 2.5, 1.0))
		require.NoError(t, err)

		m, err := FitLeastSquares(s)
		require.NoError(t, err)
		require.Equal(t, MethodLeastSquares, m.Method)
		require.InDelta(t, 2.5, m.Slope, 1e-12)
		require.InDelta(t, 1.0, m.Intercept, 1e-12)
		require.InDelta(t, 1.0, m.RSquared, 1e-12)
		require.InDelta(t, 0.0, m.RMSE, 1e-12)
		require.Equal(t, "y = 2.500 * x + 1.000", m.Formula)
	})

	t.Run("known small sample", func(t *testing.T) {
		// x̄ = 2, ȳ = 3; Σdxdy = 4, Σdx² = 2 -> slope 2, intercept -1.
		s, err := NewSeries([]float64{1, 2, 3}, []float64{1, 3, 5})
		require.NoError(t, err)

		m, err := FitLeastSquares(s)
		require.NoError(t, err)
		require.InDelta(t, 2.0, m.Slope, 1e-12)
		require.InDelta(t, -1.0, m.Intercept, 1e-12)
		require.Equal(t, "y = 2.000 * x - 1.000", m.Formula)
	})

	t.Run("degenerate x", func(t *testing.T) {
		s, err := NewSeries([]float64{1, 1, 1, 1}, []float64{2, 5, 1, 9})
		require.NoError(t, err)

		m, err := FitLeastSquares(s)
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
		require.Nil(t, m)
	})

	t.Run("degenerate x with inexact mean", func(t *testing.T) {
		s, err := NewSeries([]float64{0.1, 0.1, 0.1}, []float64{1, 2, 3})
		require.NoError(t, err)

		_, err = FitLeastSquares(s)
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
	})

	t.Run("invalid series", func(t *testing.T) {
		_, err := FitLeastSquares(Series{X: []float64{1, 2}, Y: []float64{1}})
		require.ErrorIs(t, err, errs.ErrInvalidSeries)
	})

	t.Run("converges as noise shrinks and samples grow", func(t *testing.T) {
		coarse, err := FitLeastSquares(noisyLine(t, 20, 2.5, 1.0, 2.0, 11))
		require.NoError(t, err)
		fine, err := FitLeastSquares(noisyLine(t, 5000, 2.5, 1.0, 0.01, 11))
		require.NoError(t, err)

		require.InDelta(t, 2.5, fine.Slope, 1e-3)
		require.InDelta(t, 1.0, fine.Intercept, 5e-3)
		require.LessOrEqual(t, math.Abs(fine.Slope-2.5), math.Abs(coarse.Slope-2.5)+1e-3)
	})

	t.Run("does not modify input", func(t *testing.T) {
		x := []float64{3, 1, 2}
		y := []float64{6, 2, 4}
		s, _ := NewSeries(x, y)
		_, err := FitLeastSquares(s)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 1, 2}, x)
		require.Equal(t, []float64{6, 2, 4}, y)
	})
}

func TestFitGradientDescent(t *testing.T) {
	t.Run("lab configuration", func(t *testing.T) {
		// Intercept standard error is about 0.56 for N(0, 2) noise on 50 points,
		// so the intercept bound against the true value is wide; gradient
		// descent must still agree closely with least squares on the same data.
		s := noisyLine(t, 50, 2.5, 1.0, 2.0, 0)

		gd, err := FitGradientDescent(s, WithLearningRate(0.01), WithIterations(1000))
		require.NoError(t, err)
		require.Len(t, gd.LossTrace, 1000)
		require.Equal(t, 0.01, gd.LearningRate)
		require.Equal(t, 1000, gd.Iterations)
		require.False(t, gd.Diverged())

		require.InDelta(t, 2.5, gd.Slope, 0.5)
		require.InDelta(t, 1.0, gd.Intercept, 2.5)

		ls, err := FitLeastSquares(s)
		require.NoError(t, err)
		require.InDelta(t, ls.Slope, gd.Slope, 0.05)
		require.InDelta(t, ls.Intercept, gd.Intercept, 0.1)
	})

	t.Run("low noise within documented tolerance", func(t *testing.T) {
		s := noisyLine(t, 50, 2.5, 1.0, 0.5, 5)

		gd, err := FitGradientDescent(s, WithLearningRate(0.01), WithIterations(1000))
		require.NoError(t, err)
		require.InDelta(t, 2.5, gd.Slope, 0.5)
		require.InDelta(t, 1.0, gd.Intercept, 0.5)
	})

	t.Run("defaults", func(t *testing.T) {
		s := noisyLine(t, 50, 2.5, 1.0, 0, 0)
		gd, err := FitGradientDescent(s)
		require.NoError(t, err)
		require.Len(t, gd.LossTrace, DefaultIterations)
		require.Equal(t, DefaultLearningRate, gd.LearningRate)
	})

	t.Run("loss strictly decreasing on noiseless data", func(t *testing.T) {
		s := noisyLine(t, 50, 2.5, 1.0, 0, 0)
		gd, err := FitGradientDescent(s, WithLearningRate(0.01), WithIterations(500))
		require.NoError(t, err)

		for i := 1; i < len(gd.LossTrace); i++ {
			require.Less(t, gd.LossTrace[i], gd.LossTrace[i-1], "iteration %d", i)
		}
	})

	t.Run("loss decreases overall on noisy data", func(t *testing.T) {
		s := noisyLine(t, 50, 2.5, 1.0, 2.0, 9)
		gd, err := FitGradientDescent(s)
		require.NoError(t, err)
		require.Less(t, gd.FinalLoss(), gd.LossTrace[0])
	})

	t.Run("first loss is measured before any update", func(t *testing.T) {
		x := []float64{0, 1, 2}
		y := []float64{1, 3, 5}
		s, _ := NewSeries(x, y)

		gd, err := FitGradientDescent(s, WithIterations(1))
		require.NoError(t, err)
		require.InDelta(t, (1.0+9.0+25.0)/3.0, gd.LossTrace[0], 1e-12)

		// One step from (0, 0): gradSlope = -2/3*13, gradIntercept = -2/3*9.
		require.InDelta(t, 0.01*2.0/3.0*13.0, gd.Slope, 1e-12)
		require.InDelta(t, 0.01*2.0/3.0*9.0, gd.Intercept, 1e-12)
	})

	t.Run("divergence is returned unchanged and reproducibly", func(t *testing.T) {
		s := noisyLine(t, 50, 2.5, 1.0, 2.0, 0)

		a, err := FitGradientDescent(s, WithLearningRate(1), WithIterations(300))
		require.NoError(t, err)
		require.True(t, a.Diverged())

		b, err := FitGradientDescent(s, WithLearningRate(1), WithIterations(300))
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(a.Slope), math.Float64bits(b.Slope))
		require.Equal(t, math.Float64bits(a.Intercept), math.Float64bits(b.Intercept))
		require.Len(t, b.LossTrace, 300)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		s := noisyLine(t, 10, 1, 0, 0, 0)
		for _, opt := range []DescentOption{
			WithLearningRate(0),
			WithLearningRate(-0.1),
			WithLearningRate(math.NaN()),
			WithLearningRate(math.Inf(1)),
			WithIterations(0),
			WithIterations(-5),
		} {
			res, err := FitGradientDescent(s, opt)
			require.ErrorIs(t, err, errs.ErrInvalidParameter)
			require.Nil(t, res)
		}
	})

	t.Run("invalid series", func(t *testing.T) {
		_, err := FitGradientDescent(Series{X: []float64{1}, Y: []float64{1}})
		require.ErrorIs(t, err, errs.ErrInvalidSeries)
	})

	t.Run("idempotent", func(t *testing.T) {
		s := noisyLine(t, 50, 2.5, 1.0, 2.0, 3)
		a, _ := FitGradientDescent(s)
		b, _ := FitGradientDescent(s)
		require.Equal(t, a.LossTrace, b.LossTrace)
		require.Equal(t, a.Slope, b.Slope)
		require.Equal(t, a.Intercept, b.Intercept)
	})
}

func TestFitBaseline(t *testing.T) {
	s := noisyLine(t, 50, 2.5, 1.0, 2.0, 0)

	base, err := FitBaseline(s)
	require.NoError(t, err)
	require.Equal(t, MethodBaseline, base.Method)

	ls, err := FitLeastSquares(s)
	require.NoError(t, err)
	require.InDelta(t, base.Slope, ls.Slope, 1e-9)
	require.InDelta(t, base.Intercept, ls.Intercept, 1e-9)

	degenerate, _ := NewSeries([]float64{2, 2}, []float64{1, 3})
	_, err = FitBaseline(degenerate)
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}

func TestCompare(t *testing.T) {
	s := noisyLine(t, 50, 2.5, 1.0, 2.0, 0)

	cmp, err := Compare(s, WithLearningRate(0.01), WithIterations(1000))
	require.NoError(t, err)
	require.NotNil(t, cmp.LeastSquares)
	require.NotNil(t, cmp.Descent)
	require.NotNil(t, cmp.Baseline)

	dSlope, dIntercept := cmp.Deviation(cmp.LeastSquares)
	require.Less(t, dSlope, 1e-9)
	require.Less(t, dIntercept, 1e-9)
	require.Less(t, cmp.MaxDeviation(), 0.1)

	diverged, err := Compare(s, WithLearningRate(1), WithIterations(300))
	require.NoError(t, err)
	require.True(t, math.IsNaN(diverged.MaxDeviation()) || math.IsInf(diverged.MaxDeviation(), 1))

	_, err = Compare(s, WithIterations(0))
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestLinearEstimator(t *testing.T) {
	e := NewLinearEstimator(2, -1)
	require.Equal(t, 5.0, e.Estimate(3))
	require.Equal(t, []float64{2, -1}, e.Coefficients())

	require.NoError(t, e.SetCoefficients([]float64{0.5, 4}))
	require.Equal(t, 5.0, e.Estimate(2))
	require.Error(t, e.SetCoefficients([]float64{1}))

	require.Equal(t, []float64{4, 4.5, 5}, EstimateAll(e, []float64{0, 1, 2}))
}

func TestModelHelpers(t *testing.T) {
	x := []float64{0, 1, 2}
	s, _ := NewSeries(x, []float64{1, 3, 5})
	m, err := FitLeastSquares(s)
	require.NoError(t, err)

	require.InDeltaSlice(t, []float64{7, 9}, m.Predict([]float64{3, 4}), 1e-12)
	require.Contains(t, m.String(), "least-squares")

	require.Equal(t, MethodGradientDescent, MethodFromString("Gradient-Descent"))
	require.Equal(t, Method(-1), MethodFromString("ridge"))
	require.Equal(t, "unknown", Method(42).String())

	var empty DescentResult
	require.True(t, math.IsNaN(empty.FinalLoss()))
}

func TestMeanSquaredError(t *testing.T) {
	require.InDelta(t, 2.0/3.0, MeanSquaredError([]float64{1, 2, 3}, []float64{1, 3, 2}), 1e-12)
	require.Zero(t, MeanSquaredError(nil, nil))
	require.Zero(t, calculateRSquared([]float64{2, 2}, []float64{1, 3}))
}

func BenchmarkFitGradientDescent(b *testing.B) {
	x := signal.Linspace(0, 10, 50)
	s, _ := NewSeries(x, signal.Line(x, 2.5, 1))
	for b.Loop() {
		_, _ = FitGradientDescent(s)
	}
}

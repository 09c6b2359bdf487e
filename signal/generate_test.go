package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/sigkit/errs"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
		n           int
		expected    []float64
	}{
		{"five points", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"descending", 10, 0, 3, []float64{10, 5, 0}},
		{"single", 3, 7, 1, []float64{3}},
		{"empty", 0, 1, 0, []float64{}},
		{"negative count", 0, 1, -2, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.start, tt.stop, tt.n)
			require.InDeltaSlice(t, tt.expected, got, 1e-12)
		})
	}

	t.Run("endpoint is exact", func(t *testing.T) {
		got := Linspace(0, 10, 50)
		require.Len(t, got, 50)
		require.Equal(t, 10.0, got[49])
		require.Equal(t, 0.0, got[0])
	})
}

func TestSine(t *testing.T) {
	ts := []float64{0, 0.25, 0.5, 0.75}
	got := Sine(ts, 2, 1, 0)
	require.InDeltaSlice(t, []float64{0, 2, 0, -2}, got, 1e-12)

	shifted := Sine([]float64{0}, 1, 5, math.Pi/2)
	require.InDelta(t, 1.0, shifted[0], 1e-12)
}

func TestLine(t *testing.T) {
	got := Line([]float64{0, 1, 2}, 2.5, 1)
	require.Equal(t, []float64{1, 3.5, 6}, got)
}

func TestAdd(t *testing.T) {
	got, err := Add([]float64{1, 2}, []float64{0.5, -2})
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 0}, got)

	_, err = Add([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestPeakAndRMS(t *testing.T) {
	x := []float64{1, -3, 2}
	require.Equal(t, 3.0, PeakAmplitude(x))
	require.InDelta(t, math.Sqrt(14.0/3.0), RMS(x), 1e-12)
	require.Zero(t, PeakAmplitude(nil))
	require.Zero(t, RMS(nil))

	sine := Sine(Linspace(0, 1, 1001), 2, 5, 0)
	require.InDelta(t, 2/math.Sqrt2, RMS(sine), 1e-3)
}

func TestNoiseGaussian(t *testing.T) {
	t.Run("same seed same noise", func(t *testing.T) {
		a, err := NewNoise(7).Gaussian(100, 0, 1)
		require.NoError(t, err)
		b, err := NewNoise(7).Gaussian(100, 0, 1)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a, _ := NewNoise(1).Gaussian(10, 0, 1)
		b, _ := NewNoise(2).Gaussian(10, 0, 1)
		require.NotEqual(t, a, b)
	})

	t.Run("moments", func(t *testing.T) {
		samples, err := NewNoise(42).Gaussian(20000, 0.4, 2)
		require.NoError(t, err)
		require.InDelta(t, 0.4, stat.Mean(samples, nil), 0.1)
		require.InDelta(t, 2.0, stat.StdDev(samples, nil), 0.1)
	})

	t.Run("zero std yields mean", func(t *testing.T) {
		samples, err := NewNoise(3).Gaussian(5, 1.5, 0)
		require.NoError(t, err)
		for _, v := range samples {
			require.Equal(t, 1.5, v)
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		g := NewNoise(0)
		_, err := g.Gaussian(10, 0, -1)
		require.ErrorIs(t, err, errs.ErrInvalidParameter)
		_, err = g.Gaussian(10, 0, math.NaN())
		require.ErrorIs(t, err, errs.ErrInvalidParameter)
		_, err = g.Gaussian(-1, 0, 1)
		require.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}

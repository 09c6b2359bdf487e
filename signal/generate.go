package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/sigkit/errs"
)

// Linspace returns n evenly spaced values from start to stop, both inclusive.
// n == 1 yields [start]; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out
}

// Sine samples amplitude·sin(2π·frequencyHz·t + phase) at every t.
func Sine(t []float64, amplitude, frequencyHz, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * frequencyHz
	for i, ti := range t {
		out[i] = amplitude * math.Sin(w*ti+phase)
	}

	return out
}

// Line returns slope·x + intercept for every x.
func Line(x []float64, slope, intercept float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = slope*xi + intercept
	}

	return out
}

// Add returns the elementwise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d samples", errs.ErrLengthMismatch, len(a), len(b))
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// PeakAmplitude returns max |x|, or 0 for an empty signal.
func PeakAmplitude(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		peak = math.Max(peak, math.Abs(v))
	}

	return peak
}

// RMS returns the root mean square of x, or 0 for an empty signal.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

// Noise draws reproducible Gaussian noise from a seeded PCG source.
//
// A Noise is not safe for concurrent use; give each goroutine its own.
type Noise struct {
	src rand.Source
}

// NewNoise creates a generator; equal seeds produce equal sequences.
func NewNoise(seed uint64) *Noise {
	return &Noise{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// Gaussian draws n samples from N(mean, std²).
//
// Returns errs.ErrInvalidParameter when std is negative or not finite, or n is negative.
func (g *Noise) Gaussian(n int, mean, std float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sample count must be >= 0, got %d", errs.ErrInvalidParameter, n)
	}
	if !(std >= 0) || math.IsInf(std, 1) {
		return nil, fmt.Errorf("%w: noise std must be >= 0, got %g", errs.ErrInvalidParameter, std)
	}

	dist := distuv.Normal{Mu: mean, Sigma: std, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out, nil
}

package main

import (
	"fmt"

	"github.com/arloliu/sigkit/filter"
	"github.com/arloliu/sigkit/regression"
	"github.com/arloliu/sigkit/signal"
)

// Config holds the parameters shared by all labs.
type Config struct {
	Seed uint64

	Points     int
	Slope      float64
	Intercept  float64
	LineNoise  float64
	Rate       float64
	Iterations int

	Amplitude  float64
	Frequency  float64
	Phase      float64
	NoiseMean  float64
	NoiseStd   float64
	Cutoff     float64
	Order      int
	SampleRate float64
	Alpha      float64
}

// NamedSeries is one series a lab hands to the snapshot.
type NamedSeries struct {
	Name   string
	Values []float64
}

// LabResult is the report of one lab run.
type LabResult struct {
	Title  string
	Lines  []string
	Series []NamedSeries
}

func (r *LabResult) addf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

var labOrder = []string{"regression", "descent", "lowpass", "ema"}

var labRunners = map[string]func(Config) (*LabResult, error){
	"regression": runRegression,
	"descent":    runDescent,
	"lowpass":    runLowPass,
	"ema":        runEMA,
}

// noisyLine samples slope·x + intercept on [0, 10] and adds Gaussian noise.
func noisyLine(cfg Config) (regression.Series, error) {
	x := signal.Linspace(0, 10, cfg.Points)
	noise, err := signal.NewNoise(cfg.Seed).Gaussian(len(x), 0, cfg.LineNoise)
	if err != nil {
		return regression.Series{}, err
	}
	y, err := signal.Add(signal.Line(x, cfg.Slope, cfg.Intercept), noise)
	if err != nil {
		return regression.Series{}, err
	}

	return regression.NewSeries(x, y)
}

func runRegression(cfg Config) (*LabResult, error) {
	s, err := noisyLine(cfg)
	if err != nil {
		return nil, err
	}

	ls, err := regression.FitLeastSquares(s)
	if err != nil {
		return nil, err
	}
	base, err := regression.FitBaseline(s)
	if err != nil {
		return nil, err
	}

	r := &LabResult{Title: "Least squares"}
	r.addf("True parameters:   k = %.3f, b = %.3f", cfg.Slope, cfg.Intercept)
	r.addf("Least squares:     k = %.3f, b = %.3f  (R² %.4f, RMSE %.3f)", ls.Slope, ls.Intercept, ls.RSquared, ls.RMSE)
	r.addf("Baseline (gonum):  k = %.3f, b = %.3f", base.Slope, base.Intercept)
	r.addf("Formula:           %s", ls.Formula)
	r.Series = []NamedSeries{
		{"x", s.X},
		{"y", s.Y},
		{"true", signal.Line(s.X, cfg.Slope, cfg.Intercept)},
		{"fit", ls.Predict(s.X)},
		{"baseline", base.Predict(s.X)},
	}

	return r, nil
}

func runDescent(cfg Config) (*LabResult, error) {
	s, err := noisyLine(cfg)
	if err != nil {
		return nil, err
	}

	cmp, err := regression.Compare(s,
		regression.WithLearningRate(cfg.Rate),
		regression.WithIterations(cfg.Iterations),
	)
	if err != nil {
		return nil, err
	}
	gd := cmp.Descent

	r := &LabResult{Title: "Gradient descent"}
	r.addf("True parameters:   k = %.3f, b = %.3f", cfg.Slope, cfg.Intercept)
	r.addf("Gradient descent:  k = %.3f, b = %.3f  (η %g, %d iterations)", gd.Slope, gd.Intercept, gd.LearningRate, gd.Iterations)
	r.addf("Least squares:     k = %.3f, b = %.3f", cmp.LeastSquares.Slope, cmp.LeastSquares.Intercept)
	r.addf("Baseline (gonum):  k = %.3f, b = %.3f", cmp.Baseline.Slope, cmp.Baseline.Intercept)
	r.addf("Loss:              %.4f -> %.4f", gd.LossTrace[0], gd.FinalLoss())
	r.addf("Max deviation from baseline: %.4f", cmp.MaxDeviation())
	if gd.Diverged() {
		r.addf("WARNING: gradient descent diverged; lower -rate")
	}

	iters := make([]float64, len(gd.LossTrace))
	for i := range iters {
		iters[i] = float64(i)
	}
	r.Series = []NamedSeries{
		{"x", s.X},
		{"y", s.Y},
		{"fit", gd.Predict(s.X)},
		{"iteration", iters},
		{"loss", gd.LossTrace},
	}

	return r, nil
}

// noisySine samples the configured sine on [0, duration] and adds Gaussian noise.
func noisySine(cfg Config, duration float64, n int) (t, clean, noisy []float64, err error) {
	t = signal.Linspace(0, duration, n)
	clean = signal.Sine(t, cfg.Amplitude, cfg.Frequency, cfg.Phase)

	noise, err := signal.NewNoise(cfg.Seed).Gaussian(n, cfg.NoiseMean, cfg.NoiseStd)
	if err != nil {
		return nil, nil, nil, err
	}
	noisy, err = signal.Add(clean, noise)
	if err != nil {
		return nil, nil, nil, err
	}

	return t, clean, noisy, nil
}

func runLowPass(cfg Config) (*LabResult, error) {
	t, clean, noisy, err := noisySine(cfg, 10, 1000)
	if err != nil {
		return nil, err
	}

	filtered, err := filter.LowPass(noisy,
		filter.WithCutoff(cfg.Cutoff),
		filter.WithOrder(cfg.Order),
		filter.WithSampleRate(cfg.SampleRate),
	)
	if err != nil {
		return nil, err
	}

	r := &LabResult{Title: "Butterworth low-pass"}
	r.addf("Design:            order %d, cutoff %g Hz, fs %g Hz", cfg.Order, cfg.Cutoff, cfg.SampleRate)
	reportSmoothing(r, clean, noisy, filtered)
	r.Series = []NamedSeries{{"time", t}, {"signal", clean}, {"noisy", noisy}, {"filtered", filtered}}

	return r, nil
}

func runEMA(cfg Config) (*LabResult, error) {
	t, clean, noisy, err := noisySine(cfg, 1, 500)
	if err != nil {
		return nil, err
	}

	filtered, err := filter.EMA(noisy, filter.WithAlpha(cfg.Alpha))
	if err != nil {
		return nil, err
	}

	r := &LabResult{Title: "Exponential moving average"}
	r.addf("Smoothing factor:  α = %g", cfg.Alpha)
	reportSmoothing(r, clean, noisy, filtered)
	r.Series = []NamedSeries{{"time", t}, {"signal", clean}, {"noisy", noisy}, {"filtered", filtered}}

	return r, nil
}

// reportSmoothing compares the residual noise before and after filtering.
func reportSmoothing(r *LabResult, clean, noisy, filtered []float64) {
	before, _ := signal.Add(noisy, negate(clean))
	after, _ := signal.Add(filtered, negate(clean))

	r.addf("Peak amplitude:    signal %.3f, noisy %.3f, filtered %.3f",
		signal.PeakAmplitude(clean), signal.PeakAmplitude(noisy), signal.PeakAmplitude(filtered))
	r.addf("Residual RMS:      noisy %.3f, filtered %.3f", signal.RMS(before), signal.RMS(after))
}

func negate(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = -v
	}

	return out
}

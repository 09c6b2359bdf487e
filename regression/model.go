package regression

import (
	"fmt"
	"math"
	"strings"
)

// Method identifies the estimator that produced a Model.
type Method int

const (
	// MethodLeastSquares is the closed-form ordinary least squares fit.
	MethodLeastSquares Method = iota
	// MethodGradientDescent is the batch gradient descent fit.
	MethodGradientDescent
	// MethodBaseline is gonum's stat.LinearRegression.
	MethodBaseline
)

var methodNames = map[Method]string{
	MethodLeastSquares:    "least-squares",
	MethodGradientDescent: "gradient-descent",
	MethodBaseline:        "baseline",
}

// String returns the method name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return "unknown"
}

// MethodFromString returns the Method for a case-insensitive name, or Method(-1).
func MethodFromString(name string) Method {
	name = strings.ToLower(name)
	for m, n := range methodNames {
		if n == name {
			return m
		}
	}

	return Method(-1)
}

// Model is a fitted line together with its goodness-of-fit on the input series.
type Model struct {
	// Method is the estimator that produced the model.
	Method Method
	// Slope is the fitted slope.
	Slope float64
	// Intercept is the fitted intercept.
	Intercept float64
	// RSquared is the coefficient of determination on the input series.
	RSquared float64
	// RMSE is the root mean square error on the input series.
	RMSE float64
	// Formula is a human-readable form of the line.
	Formula string
	// Estimator evaluates the fitted line.
	Estimator Estimator
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Method: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Method, m.RSquared, m.RMSE, m.Formula)
}

// Predict evaluates the fitted line at every x.
func (m *Model) Predict(xs []float64) []float64 {
	return EstimateAll(m.Estimator, xs)
}

// DescentResult is the outcome of FitGradientDescent.
type DescentResult struct {
	Model
	// LossTrace holds the mean squared error measured before each update;
	// its length equals the iteration count.
	LossTrace []float64
	// LearningRate is the step size that was used.
	LearningRate float64
	// Iterations is the number of updates that were applied.
	Iterations int
}

// Diverged reports whether the fitted parameters are no longer finite.
func (r *DescentResult) Diverged() bool {
	return !isFinite(r.Slope) || !isFinite(r.Intercept)
}

// FinalLoss returns the last recorded loss, or NaN for an empty trace.
func (r *DescentResult) FinalLoss() float64 {
	if len(r.LossTrace) == 0 {
		return math.NaN()
	}

	return r.LossTrace[len(r.LossTrace)-1]
}

func newModel(method Method, s Series, slope, intercept float64) *Model {
	predicted := make([]float64, s.Len())
	for i, x := range s.X {
		predicted[i] = slope*x + intercept
	}

	return &Model{
		Method:    method,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  calculateRSquared(s.Y, predicted),
		RMSE:      calculateRMSE(s.Y, predicted),
		Formula:   formatFormula(slope, intercept),
		Estimator: NewLinearEstimator(slope, intercept),
	}
}

func formatFormula(slope, intercept float64) string {
	if intercept < 0 {
		return fmt.Sprintf("y = %.3f * x - %.3f", slope, -intercept)
	}

	return fmt.Sprintf("y = %.3f * x + %.3f", slope, intercept)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

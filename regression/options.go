package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/internal/options"
)

const (
	// DefaultLearningRate is the gradient descent step size used when none is given.
	DefaultLearningRate = 0.01
	// DefaultIterations is the gradient descent iteration count used when none is given.
	DefaultIterations = 1000
)

// DescentConfig holds gradient descent parameters.
type DescentConfig struct {
	LearningRate float64
	Iterations   int
}

func defaultDescentConfig() *DescentConfig {
	return &DescentConfig{
		LearningRate: DefaultLearningRate,
		Iterations:   DefaultIterations,
	}
}

// DescentOption configures FitGradientDescent and Compare.
type DescentOption = options.Option[*DescentConfig]

// WithLearningRate sets the step size η. It must be a finite value > 0.
func WithLearningRate(rate float64) DescentOption {
	return options.New(func(cfg *DescentConfig) error {
		if !(rate > 0) || math.IsInf(rate, 1) {
			return fmt.Errorf("%w: learning rate must be > 0, got %g", errs.ErrInvalidParameter, rate)
		}
		cfg.LearningRate = rate

		return nil
	})
}

// WithIterations sets the number of updates T. It must be at least 1.
func WithIterations(n int) DescentOption {
	return options.New(func(cfg *DescentConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: iterations must be >= 1, got %d", errs.ErrInvalidParameter, n)
		}
		cfg.Iterations = n

		return nil
	})
}

func newDescentConfig(opts ...DescentOption) (*DescentConfig, error) {
	return options.Build(defaultDescentConfig(), nil, opts...)
}

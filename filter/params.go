package filter

import (
	"fmt"
	"math"

	"github.com/arloliu/sigkit/errs"
	"github.com/arloliu/sigkit/internal/options"
)

const (
	// DefaultOrder is the Butterworth order used when none is given.
	DefaultOrder = 4
	// DefaultSampleRateHz is the sampling frequency used when none is given.
	DefaultSampleRateHz = 1000.0
	// DefaultCutoffHz is the low-pass cutoff used when none is given.
	DefaultCutoffHz = 5.0
	// DefaultAlpha is the EMA smoothing factor used when none is given.
	DefaultAlpha = 0.2
)

// Params holds the parameters of both filters. LowPass reads CutoffHz, Order
// and SampleRateHz; EMA reads Alpha.
type Params struct {
	CutoffHz     float64
	Order        int
	SampleRateHz float64
	Alpha        float64
}

// Option configures Params.
type Option = options.Option[*Params]

// DefaultParams returns the parameters used when no option overrides them.
func DefaultParams() Params {
	return Params{
		CutoffHz:     DefaultCutoffHz,
		Order:        DefaultOrder,
		SampleRateHz: DefaultSampleRateHz,
		Alpha:        DefaultAlpha,
	}
}

// NewParams applies opts on top of DefaultParams.
//
// Each option checks its own value; the cross-field check cutoff < fs/2 is
// left to LowPass because the two may be set in either order.
func NewParams(opts ...Option) (Params, error) {
	p := DefaultParams()
	if _, err := options.Build(&p, nil, opts...); err != nil {
		return Params{}, err
	}

	return p, nil
}

// WithCutoff sets the low-pass cutoff frequency in Hz. It must be finite and > 0.
func WithCutoff(hz float64) Option {
	return options.New(func(p *Params) error {
		if !(hz > 0) || math.IsInf(hz, 1) {
			return fmt.Errorf("%w: cutoff must be > 0 Hz, got %g", errs.ErrInvalidParameter, hz)
		}
		p.CutoffHz = hz

		return nil
	})
}

// WithOrder sets the Butterworth order. It must be at least 1.
func WithOrder(order int) Option {
	return options.New(func(p *Params) error {
		if order < 1 {
			return fmt.Errorf("%w: order must be >= 1, got %d", errs.ErrInvalidParameter, order)
		}
		p.Order = order

		return nil
	})
}

// WithSampleRate sets the sampling frequency in Hz. It must be finite and > 0.
func WithSampleRate(hz float64) Option {
	return options.New(func(p *Params) error {
		if !(hz > 0) || math.IsInf(hz, 1) {
			return fmt.Errorf("%w: sample rate must be > 0 Hz, got %g", errs.ErrInvalidParameter, hz)
		}
		p.SampleRateHz = hz

		return nil
	})
}

// WithAlpha sets the EMA smoothing factor. It must lie in (0, 1].
func WithAlpha(alpha float64) Option {
	return options.New(func(p *Params) error {
		if !(alpha > 0 && alpha <= 1) {
			return fmt.Errorf("%w: alpha must be in (0, 1], got %g", errs.ErrInvalidParameter, alpha)
		}
		p.Alpha = alpha

		return nil
	})
}

// Nyquist returns half the sample rate.
func (p Params) Nyquist() float64 {
	return p.SampleRateHz / 2
}

// NormalizedCutoff returns the cutoff as a fraction of the Nyquist frequency,
// the Wn argument of Butterworth.
func (p Params) NormalizedCutoff() float64 {
	return p.CutoffHz / p.Nyquist()
}

func (p Params) validateLowPass() error {
	if !(p.SampleRateHz > 0) || math.IsInf(p.SampleRateHz, 1) {
		return fmt.Errorf("%w: sample rate must be > 0 Hz, got %g", errs.ErrInvalidParameter, p.SampleRateHz)
	}
	if p.Order < 1 {
		return fmt.Errorf("%w: order must be >= 1, got %d", errs.ErrInvalidParameter, p.Order)
	}
	if !(p.CutoffHz > 0 && p.CutoffHz < p.Nyquist()) {
		return fmt.Errorf("%w: cutoff must be in (0, %g) Hz for a %g Hz sample rate, got %g",
			errs.ErrInvalidParameter, p.Nyquist(), p.SampleRateHz, p.CutoffHz)
	}

	return nil
}

func (p Params) validateEMA() error {
	if !(p.Alpha > 0 && p.Alpha <= 1) {
		return fmt.Errorf("%w: alpha must be in (0, 1], got %g", errs.ErrInvalidParameter, p.Alpha)
	}

	return nil
}

// Package filter smooths uniformly sampled signals.
//
// Two filters are provided:
//
//   - LowPass: a Butterworth low-pass filter applied forward and backward
//     (zero phase), so the output is not delayed relative to the input.
//   - EMA: a first-order exponential moving average.
//
// Both are configured with functional options. Unset parameters fall back to
// DefaultParams: order 4, 1000 Hz sample rate, 5 Hz cutoff and α = 0.2.
//
//	smooth, err := filter.LowPass(noisy,
//	    filter.WithSampleRate(100),
//	    filter.WithCutoff(2),
//	    filter.WithOrder(4),
//	)
//	if err != nil {
//	    return err // errs.ErrInvalidParameter when cutoff is not inside (0, fs/2)
//	}
//
//	ema, err := filter.EMA(noisy, filter.WithAlpha(0.1))
//
// The design and application steps are exported separately as Butterworth
// and FiltFilt for callers that apply one design to many signals.
//
// # Edges
//
// FiltFilt extends the signal at both ends by odd reflection about the end
// samples, min(3·max(len(a), len(b)), N-1) samples per side, and starts each
// pass from the filter's steady state for the first sample it sees. A
// constant signal therefore passes through unchanged, including its edges.
//
// All functions are pure and safe for concurrent use. Input slices are never
// modified and an empty input yields an empty, non-nil output.
package filter

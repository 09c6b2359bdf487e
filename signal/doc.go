// Package signal generates the synthetic inputs the estimators and filters are
// exercised with: evenly spaced sample grids, sine waves, straight lines and
// seeded Gaussian noise.
//
// Noise is drawn once by the caller and then passed into the pure routines of
// the regression and filter packages, so re-running a filter with new
// parameters never changes the noise it is applied to:
//
//	t := signal.Linspace(0, 10, 1000)
//	clean := signal.Sine(t, 0.97, 0.27, 0)
//
//	noise, err := signal.NewNoise(42).Gaussian(len(t), 0.4, 0.4)
//	if err != nil {
//	    return err
//	}
//	noisy, _ := signal.Add(clean, noise)
//
//	smoothed, _ := filter.EMA(noisy, filter.WithAlpha(0.2))
package signal

package main

import (
	"fmt"
	"io"
	"strings"
)

// PrintConfig prints the configuration summary.
func PrintConfig(cfg Config) {
	fmt.Println("=== sigkit labs ===")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("  Seed:              %d\n", cfg.Seed)
	fmt.Printf("  Line:              y = %g * x + %g, noise σ %g, %d points\n", cfg.Slope, cfg.Intercept, cfg.LineNoise, cfg.Points)
	fmt.Printf("  Gradient descent:  η %g, %d iterations\n", cfg.Rate, cfg.Iterations)
	fmt.Printf("  Sine:              amplitude %g, %g Hz, phase %g\n", cfg.Amplitude, cfg.Frequency, cfg.Phase)
	fmt.Printf("  Noise:             mean %g, σ %g\n", cfg.NoiseMean, cfg.NoiseStd)
	fmt.Println()
}

// Print writes the lab report to w.
func (r *LabResult) Print(w io.Writer) {
	fmt.Fprintf(w, "=== %s ===\n", r.Title)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, line := range r.Lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}

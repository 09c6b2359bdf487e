// Command sigkit runs the regression and filtering labs headlessly and prints
// a text report. With -snapshot it also writes every generated series to a
// snapshot file for a plotting front end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arloliu/sigkit/filter"
	"github.com/arloliu/sigkit/format"
	"github.com/arloliu/sigkit/regression"
	"github.com/arloliu/sigkit/snapshot"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sigkit: ")

	lab := flag.String("lab", "all", "Lab to run: regression, descent, lowpass, ema or all")
	seed := flag.Uint64("seed", 0, "Noise seed")

	// Regression labs
	points := flag.Int("points", 50, "Number of regression samples on [0, 10]")
	slope := flag.Float64("slope", 2.5, "True slope of the generated line")
	intercept := flag.Float64("intercept", 1.0, "True intercept of the generated line")
	lineNoise := flag.Float64("line-noise", 2.0, "Standard deviation of the noise added to the line")
	rate := flag.Float64("rate", regression.DefaultLearningRate, "Gradient descent learning rate")
	iterations := flag.Int("iterations", regression.DefaultIterations, "Gradient descent iterations")

	// Filter labs
	amplitude := flag.Float64("amplitude", 0.97, "Sine amplitude")
	frequency := flag.Float64("frequency", 0.27, "Sine frequency in Hz")
	phase := flag.Float64("phase", 0, "Sine phase in radians")
	noiseMean := flag.Float64("noise-mean", 0.4, "Mean of the noise added to the sine")
	noiseStd := flag.Float64("noise-std", 0.4, "Standard deviation of the noise added to the sine")
	cutoff := flag.Float64("cutoff", filter.DefaultCutoffHz, "Low-pass cutoff frequency in Hz")
	order := flag.Int("order", filter.DefaultOrder, "Butterworth order")
	sampleRate := flag.Float64("fs", filter.DefaultSampleRateHz, "Sample rate used for the low-pass design in Hz")
	alpha := flag.Float64("alpha", filter.DefaultAlpha, "EMA smoothing factor")

	snapshotPath := flag.String("snapshot", "", "Optional snapshot output file")
	compression := flag.String("compression", "zstd", "Snapshot compression: none, zstd, s2 or lz4")

	flag.Parse()

	labs, err := selectLabs(*lab)
	if err != nil {
		log.Fatal(err)
	}

	cfg := Config{
		Seed:       *seed,
		Points:     *points,
		Slope:      *slope,
		Intercept:  *intercept,
		LineNoise:  *lineNoise,
		Rate:       *rate,
		Iterations: *iterations,
		Amplitude:  *amplitude,
		Frequency:  *frequency,
		Phase:      *phase,
		NoiseMean:  *noiseMean,
		NoiseStd:   *noiseStd,
		Cutoff:     *cutoff,
		Order:      *order,
		SampleRate: *sampleRate,
		Alpha:      *alpha,
	}

	var enc *snapshot.Encoder
	if *snapshotPath != "" {
		ct, err := format.ParseCompression(*compression)
		if err != nil {
			log.Fatal(err)
		}
		enc, err = snapshot.NewEncoder(snapshot.WithCompression(ct))
		if err != nil {
			log.Fatalf("Failed to create snapshot encoder: %v", err)
		}
	}

	PrintConfig(cfg)

	for _, name := range labs {
		result, err := labRunners[name](cfg)
		if err != nil {
			log.Fatalf("%s lab failed: %v", name, err)
		}
		result.Print(os.Stdout)

		if enc == nil {
			continue
		}
		for _, s := range result.Series {
			if err := enc.Add(name+"."+s.Name, s.Values); err != nil {
				log.Fatalf("Failed to add %s.%s to snapshot: %v", name, s.Name, err)
			}
		}
	}

	if enc != nil {
		if err := writeSnapshot(enc, *snapshotPath); err != nil {
			log.Fatal(err)
		}
	}
}

func selectLabs(name string) ([]string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "all" {
		return labOrder, nil
	}
	if _, ok := labRunners[name]; !ok {
		return nil, fmt.Errorf("unknown lab %q (want %s or all)", name, strings.Join(labOrder, ", "))
	}

	return []string{name}, nil
}

func writeSnapshot(enc *snapshot.Encoder, path string) error {
	data, err := enc.Finish()
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	stats := enc.Stats()
	fmt.Printf("Snapshot written to %s: %d series, %d bytes (%s payload %.1f%% smaller)\n",
		path, enc.Len(), len(data), stats.Algorithm, stats.SpaceSavings())

	return nil
}

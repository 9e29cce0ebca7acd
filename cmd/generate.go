package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/achilleas-k/brian-scripts/spikes"
)

var (
	specPath string // Path to a YAML run spec; overrides the direct flags

	seed       int64   // Seed for random train generation
	numTrains  int     // Number of spike trains in the ensemble
	rate       float64 // Spike rate per train (Hz)
	synchrony  float64 // Fraction of trains sharing the jittered template
	jitter     float64 // Jitter standard deviation (seconds)
	duration   float64 // Train duration (seconds)
	dt         float64 // Grid step (seconds)
	outputPath string  // Output file; empty writes to stdout
)

// generateCmd builds a synchronous input ensemble and writes the spike times,
// one train per line.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an ensemble of correlated and independent Poisson spike trains",
	Run: func(cmd *cobra.Command, args []string) {
		spec := &spikes.RunSpec{
			Seed:      seed,
			N:         numTrains,
			Rate:      rate,
			Synchrony: synchrony,
			Jitter:    jitter,
			Duration:  duration,
			DT:        dt,
		}
		if specPath != "" {
			loaded, err := spikes.LoadRunSpec(specPath)
			if err != nil {
				logrus.Fatalf("unable to load run spec: %v", err)
			}
			spec = loaded
		}
		spec.ApplyDefaults()
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("invalid generation parameters: %v", err)
		}

		logrus.Infof("Generating %d trains at %g Hz for %gs (synchrony=%g, jitter=%gs, dt=%gs, seed=%d)",
			spec.N, spec.Rate, spec.Duration, spec.Synchrony, spec.Jitter, spec.DT, spec.Seed)
		ensemble := spec.Generate()

		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				logrus.Fatalf("unable to create output file %s: %v", outputPath, err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					logrus.Fatalf("unable to close output file %s: %v", outputPath, err)
				}
			}()
			out = f
		}
		if err := writeEnsemble(out, ensemble); err != nil {
			logrus.Fatalf("unable to write ensemble: %v", err)
		}
	},
}

// writeEnsemble writes one train per line as space-separated seconds.
func writeEnsemble(out *os.File, ensemble spikes.Ensemble) error {
	w := bufio.NewWriter(out)
	for _, train := range ensemble {
		fields := make([]string, len(train))
		for i, t := range train {
			fields[i] = strconv.FormatFloat(t, 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return w.Flush()
}

func init() {
	generateCmd.Flags().StringVar(&specPath, "spec", "", "YAML run spec (overrides the parameter flags)")
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random train generation")
	generateCmd.Flags().IntVar(&numTrains, "n", 1, "Number of spike trains")
	generateCmd.Flags().Float64Var(&rate, "rate", 20.0, "Spike rate per train (Hz)")
	generateCmd.Flags().Float64Var(&synchrony, "synchrony", 0.0, "Fraction of trains sharing the jittered template [0, 1]")
	generateCmd.Flags().Float64Var(&jitter, "jitter", 0.0, "Jitter standard deviation (seconds)")
	generateCmd.Flags().Float64Var(&duration, "duration", 1.0, "Train duration (seconds)")
	generateCmd.Flags().Float64Var(&dt, "dt", spikes.DefaultDT, "Grid step (seconds)")
	generateCmd.Flags().StringVar(&outputPath, "output", "", "Output file (default: stdout)")

	rootCmd.AddCommand(generateCmd)
}

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/achilleas-k/brian-scripts/spikes"
)

var (
	spikesPath string  // Plain-text spike time file
	tracePath  string  // Plain-text membrane potential file (optional)
	window     float64 // Pre-spike window for slope and STA calculations (seconds)
	threshold  float64 // Firing threshold for normalized slopes
	tau        float64 // Membrane leak time constant (seconds)
	analyzeDT  float64 // Grid step of the trace (seconds)
	psthBin    float64 // PSTH bin width (seconds)
)

// analyzeCmd loads a spike train (and optionally the matching membrane
// potential trace) from plain-text files and prints the irregularity and
// slope statistics.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute irregularity and pre-spike slope statistics for a recorded spike train",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := spikes.NewGrid(analyzeDT); err != nil {
			logrus.Fatalf("invalid grid step: %v", err)
		}
		train, err := loadSeries(spikesPath)
		if err != nil {
			logrus.Fatalf("unable to load spike train: %v", err)
		}
		st := spikes.SpikeTrain(train)
		if err := st.Validate(0); err != nil {
			logrus.Fatalf("spike train %s is not strictly increasing: %v", spikesPath, err)
		}

		fmt.Printf("spikes: %d\n", len(st))
		fmt.Printf("CV:  %.6f\n", spikes.CV(st))
		fmt.Printf("CV2: %.6f\n", spikes.CV2(st))
		fmt.Printf("LV:  %.6f\n", spikes.LV(st))
		fmt.Printf("IR:  %.6f\n", spikes.IR(st))
		fmt.Printf("SI:  %.6f\n", spikes.SI(st))

		_, counts, err := spikes.PSTH(st, psthBin, analyzeDT, 0)
		if err != nil {
			logrus.Fatalf("unable to compute PSTH: %v", err)
		}
		fmt.Printf("PSTH bins: %d (width %gs)\n", len(counts), psthBin)

		if tracePath == "" {
			return
		}
		trace, err := loadSeries(tracePath)
		if err != nil {
			logrus.Fatalf("unable to load potential trace: %v", err)
		}

		meanSlope, _ := spikes.FiringSlope(trace, st, window, analyzeDT)
		fmt.Printf("firing slope: %.6f\n", meanSlope)
		if threshold != 0 && tau > 0 {
			meanNorm, _ := spikes.NormFiringSlope(trace, st, threshold, tau, window, analyzeDT)
			fmt.Printf("normalized firing slope: %.6f\n", meanNorm)
		}
		if avg, _, _ := spikes.STA(trace, st, window, analyzeDT); avg != nil {
			fmt.Printf("STA window: %d samples, mean end value %.6f\n", len(avg), avg[len(avg)-1])
		}
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&spikesPath, "spikes", "", "Spike time file (whitespace or comma separated seconds)")
	analyzeCmd.Flags().StringVar(&tracePath, "trace", "", "Membrane potential file sampled at the grid step")
	analyzeCmd.Flags().Float64Var(&window, "window", 0.002, "Pre-spike window (seconds)")
	analyzeCmd.Flags().Float64Var(&threshold, "threshold", 0, "Firing threshold (trace units)")
	analyzeCmd.Flags().Float64Var(&tau, "tau", 0, "Membrane leak time constant (seconds)")
	analyzeCmd.Flags().Float64Var(&analyzeDT, "dt", spikes.DefaultDT, "Grid step (seconds)")
	analyzeCmd.Flags().Float64Var(&psthBin, "bin", 0.001, "PSTH bin width (seconds)")
	if err := analyzeCmd.MarkFlagRequired("spikes"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(analyzeCmd)
}

package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
)

// correlateCmd analyzes historical factor correlations.
var correlateCmd = &cobra.Command{
	Use:   "correlate [tech-file]",
	Short: "Correlate historical factors with automation scores.",
	Long: `Measure how historical factors track the automation score over time.

Computes a Pearson correlation per factor inside the trailing analysis
window, flags the strongest factor, and summarizes the trend direction
with a reliability grade based on sample size.

Requires a history file with timestamped observations.

Examples:
  # Correlate over the default window
  autoscope correlate tech.json --history-file history.json

  # Restrict to the last twelve months
  autoscope correlate tech.json --history-file history.json -t 12`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeCorrelate(cfg); err != nil {
			contract.LogFatal("Cannot run correlation analysis", err)
		}
	},
}

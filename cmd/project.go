package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
)

// projectCmd projects automation potential over a multi-year horizon.
var projectCmd = &cobra.Command{
	Use:   "project [tech-file]",
	Short: "Project automation potential over future years.",
	Long: `Project how a technology's automation potential evolves year by year.

Each projected year carries:
- An adjusted automation potential score
- A confidence value that decays with distance
- The key factors that moved the score (maturity, trend, decay)

Historical observations sharpen the projection when provided; without
them the model falls back to maturity-driven growth alone.

Examples:
  # Project ten years out from the default base score
  autoscope project tech.json --years 10

  # Start from a known current score
  autoscope project tech.json -y 5 --base-score 0.35

  # Anchor the trend with historical observations
  autoscope project tech.json -y 5 --history-file history.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeProject(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run projection", err)
		}
	},
}

package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
)

// maturityCmd assesses the technology lifecycle stage.
var maturityCmd = &cobra.Command{
	Use:   "maturity [tech-file]",
	Short: "Assess current and projected lifecycle stage.",
	Long: `Assess where a technology sits in its adoption lifecycle.

Shows the current level, the level projected after the given number of
years, and how many months remain until the next stage transition.

Lifecycle stages: Experimental, Emerging, Growth, Mature, Declining.

Examples:
  # Where will this technology be in three years?
  autoscope maturity tech.json --years 3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeMaturity(cfg); err != nil {
			contract.LogFatal("Cannot run maturity assessment", err)
		}
	},
}

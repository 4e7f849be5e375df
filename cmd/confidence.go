package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
)

// confidenceCmd scores how trustworthy a prediction would be.
var confidenceCmd = &cobra.Command{
	Use:   "confidence [tech-file]",
	Short: "Score prediction confidence for a horizon.",
	Long: `Score how much confidence a prediction deserves at a given horizon.

Breaks the overall score into five weighted metrics:
- Data quality of the technology record
- Maturity stability of the lifecycle stage
- Prediction horizon decay
- Historical data volume
- Industry clarity

Also reports a reliability grade and concrete recommendations for
raising low metrics.

Examples:
  # Confidence for a five-year prediction
  autoscope confidence tech.json --years 5

  # Credit available historical observations
  autoscope confidence tech.json -y 5 --history-file history.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeConfidence(cfg); err != nil {
			contract.LogFatal("Cannot run confidence scoring", err)
		}
	},
}

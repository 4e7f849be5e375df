package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
)

// impactCmd projects impact metrics over short, medium and long terms.
var impactCmd = &cobra.Command{
	Use:   "impact [tech-file]",
	Short: "Project short, medium and long-term impact.",
	Long: `Project a technology's impact across three planning horizons.

Reports impact and confidence for:
- Short term  (~1 year)
- Medium term (~3 years)
- Long term   (~5+ years)

Industry context scales the impact using the technology's own
per-industry disruption data when available.

Examples:
  # Industry-neutral impact projection
  autoscope impact tech.json

  # Scale by a specific industry's exposure
  autoscope impact tech.json --industry Manufacturing -y 5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeImpact(cfg); err != nil {
			contract.LogFatal("Cannot run impact projection", err)
		}
	},
}

package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd performs the full technology impact analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [tech-file]",
	Short: "Run the full impact analysis for a technology.",
	Long: `Perform a complete impact analysis for one emerging technology.

Combines four assessments into a single report:
- Job impact: automation risk and augmentation potential
- Skill gaps: missing skills with severity and training needs
- Readiness: infrastructure, workforce and budget recommendations
- Timeline: a phased adoption plan with a critical path

Results are cached per technology, industry and skill set, so repeated
runs with identical inputs return instantly.

Examples:
  # Analyze for a specific industry
  autoscope analyze tech.json --industry Healthcare

  # Include the skills already available in-house
  autoscope analyze tech.json -i Finance -s "python,sql,statistics"

  # Load skills from a file and export as JSON
  autoscope analyze tech.json -i Finance --skills-file skills.json --output json

  # Export findings to CSV for tracking
  autoscope analyze tech.json -i Retail --output csv --output-file report.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeAnalyze(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run impact analysis", err)
		}
	},
}

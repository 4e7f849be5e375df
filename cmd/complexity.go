package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// complexityCmd scores occupation complexity factors.
var complexityCmd = &cobra.Command{
	Use:   "complexity",
	Short: "Score the complexity of an occupation profile.",
	Long: `Score four independent complexity factors for an occupation.

Factors (each 0-1):
- Task complexity: keyword density, tool count, work activities
- Skill requirements: proficiency levels, category breadth, count
- Technological sophistication: tech count, categories, recency
- Decision-making autonomy: decision, impact and independence signals

Keyword matching uses the built-in vocabulary unless a vocabulary file
override is configured.

Examples:
  # Score an occupation profile
  autoscope complexity --occupation-file analyst.json

  # Use a custom keyword vocabulary
  autoscope complexity --occupation-file analyst.json --vocabulary-file vocab.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		occupationPath := viper.GetString("occupation-file")
		if err := executeComplexity(occupationPath, cfg); err != nil {
			contract.LogFatal("Cannot run complexity scoring", err)
		}
	},
}

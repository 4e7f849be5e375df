package cmd

import (
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
	"github.com/spf13/cobra"
)

// metricsCmd shows the active scoring weights for diagnostic purposes.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the active scoring weights and multipliers.",
	Long: `Display every weight table the scoring engines currently use.

Shows:
- Confidence metric blend (defaults plus any config overrides)
- Maturity level projection weights
- Impact term multipliers (short/medium/long)
- Combined-impact projection weights
- Active keyword vocabulary version

Useful for:
- Verifying config-file weight overrides took effect
- Documenting the exact model parameters behind a report`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("Confidence metric blend:\n")
		for _, name := range []string{
			schema.MetricDataQuality,
			schema.MetricPredictionHorizon,
			schema.MetricMarketStability,
			schema.MetricTechMaturity,
			schema.MetricIndustryRelevance,
		} {
			cmd.Printf("  %-22s %.2f\n", name, cfg.ConfidenceWeights[name])
		}

		cmd.Printf("\nMaturity projection weights:\n")
		for _, level := range schema.MaturityOrder {
			cmd.Printf("  %-22s %.2f\n", level, schema.MaturityWeights[level])
		}

		cmd.Printf("\nImpact term multipliers:\n")
		cmd.Printf("  %-22s %.2f\n", "short_term", schema.ShortTermMultiplier)
		cmd.Printf("  %-22s %.2f\n", "medium_term", schema.MediumTermMultiplier)
		cmd.Printf("  %-22s %.2f\n", "long_term", schema.LongTermMultiplier)

		cmd.Printf("\nCombined-impact weights:\n")
		cmd.Printf("  %-22s %.2f\n", schema.FactorMaturity, schema.MaturityImpactWeight)
		cmd.Printf("  %-22s %.2f\n", schema.FactorIndustryAdoption, schema.AdoptionImpactWeight)
		cmd.Printf("  %-22s %.2f\n", schema.FactorMarketGrowth, schema.MarketImpactWeight)
		cmd.Printf("  %-22s %.2f\n", schema.FactorHistoricalTrend, schema.HistoricalTrendWeight)

		vocab, err := contract.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			contract.LogFatal("Cannot load vocabulary", err)
		}
		cmd.Printf("\nVocabulary version: %s\n", vocab.Version)
	},
}

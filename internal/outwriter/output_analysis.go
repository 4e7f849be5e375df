package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAnalysisResults outputs a full technology analysis, dispatching based on the output format configured.
func PrintAnalysisResults(analysis *schema.EmergingTechAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printAnalysisJSONResults(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printAnalysisCSVResults(analysis, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeAnalysisText(w, analysis, cfg, fmtFloat, duration)
		}, "Wrote analysis")
	}
	return nil
}

// printAnalysisJSONResults handles opening the file and calling the JSON writer.
func printAnalysisJSONResults(analysis *schema.EmergingTechAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeJSONResultsForAnalysis(w, analysis)
	}, "Wrote JSON analysis")
}

// printAnalysisCSVResults handles opening the file and calling the CSV writer.
func printAnalysisCSVResults(analysis *schema.EmergingTechAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForAnalysis(csvWriter, analysis, fmtFloat)
	}, "Wrote CSV analysis")
}

// writeAnalysisText renders the four analysis sections as tables with a
// summary footer.
func writeAnalysisText(w io.Writer, analysis *schema.EmergingTechAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	label := labelFunc(cfg)
	nameWidth := GetMaxTableNameWidth(cfg)

	title := fmt.Sprintf("Technology Impact Analysis: %s [%s]", analysis.Technology, analysis.Industry)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🔍", title)); err != nil {
		return err
	}

	// --- 1. Job impact scores ---
	impact := analysis.JobImpact
	scoreTable := tablewriter.NewWriter(w)
	scoreTable.Header([]string{"Dimension", "Score", "Label"})
	scoreTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	scoreRows := [][]string{
		{"Automation risk", fmtFloat(impact.AutomationRisk), label(impact.AutomationRisk)},
		{"Augmentation potential", fmtFloat(impact.AugmentationPotential), label(impact.AugmentationPotential)},
		{"New role creation", fmtFloat(impact.NewRoleCreation), label(impact.NewRoleCreation)},
		{"Skill transferability", fmtFloat(impact.SkillTransferability), label(impact.SkillTransferability)},
		{"Skill gap severity", fmtFloat(analysis.SkillGaps.GapSeverity), label(analysis.SkillGaps.GapSeverity)},
		{"Market availability", fmtFloat(analysis.SkillGaps.MarketAvailability), label(analysis.SkillGaps.MarketAvailability)},
		{"Readiness", fmtFloat(analysis.Readiness.OverallScore), label(analysis.Readiness.OverallScore)},
	}
	if err := scoreTable.Bulk(scoreRows); err != nil {
		return err
	}
	if err := scoreTable.Render(); err != nil {
		return err
	}

	for _, strategy := range impact.MitigationStrategies {
		if _, err := fmt.Fprintf(w, "  - %s\n", strategy); err != nil {
			return err
		}
	}

	// --- 2. Training needs ---
	if len(analysis.SkillGaps.TrainingNeeds) > 0 {
		if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🎓", "Training needs")); err != nil {
			return err
		}
		needTable := tablewriter.NewWriter(w)
		needTable.Header([]string{"Skill", "Priority", "Months", "Resources"})
		needTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var needRows [][]string
		for _, need := range analysis.SkillGaps.TrainingNeeds {
			needRows = append(needRows, []string{
				contract.TruncateName(need.Skill, nameWidth),
				string(need.Priority),
				fmtFloat(need.MonthsToAcquire),
				strings.Join(need.Resources, ", "),
			})
		}
		if err := needTable.Bulk(needRows); err != nil {
			return err
		}
		if err := needTable.Render(); err != nil {
			return err
		}
	}

	// --- 3. Readiness recommendations ---
	if len(analysis.Readiness.Recommendations) > 0 {
		if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🏗️", "Readiness recommendations")); err != nil {
			return err
		}
		recTable := tablewriter.NewWriter(w)
		recTable.Header([]string{"Category", "Priority", "Action", "Timeline"})
		var recRows [][]string
		for _, rec := range analysis.Readiness.Recommendations {
			recRows = append(recRows, []string{
				rec.Category,
				string(rec.Priority),
				contract.TruncateName(rec.Action, nameWidth),
				rec.Timeline,
			})
		}
		if err := recTable.Bulk(recRows); err != nil {
			return err
		}
		if err := recTable.Render(); err != nil {
			return err
		}
	}

	// --- 4. Implementation timeline ---
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🗓️", "Implementation timeline")); err != nil {
		return err
	}
	phaseTable := tablewriter.NewWriter(w)
	phaseTable.Header([]string{"Phase", "Start", "Duration", "End"})
	phaseTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var phaseRows [][]string
	for _, phase := range analysis.Timeline.Phases {
		phaseRows = append(phaseRows, []string{
			phase.Name,
			fmtFloat(phase.StartMonth),
			fmtFloat(phase.Duration),
			fmtFloat(phase.End()),
		})
	}
	if err := phaseTable.Bulk(phaseRows); err != nil {
		return err
	}
	if err := phaseTable.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Critical path: %s\n", strings.Join(analysis.Timeline.CriticalPath, " -> ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total rollout: %s months (confidence %s)\n",
		fmtFloat(analysis.Timeline.TotalMonths), fmtFloat(analysis.Timeline.ConfidenceLevel)); err != nil {
		return err
	}

	// Footer
	if _, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

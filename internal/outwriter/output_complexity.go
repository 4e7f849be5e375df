package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComplexityResults outputs occupation complexity factors, dispatching based on the output format configured.
func PrintComplexityResults(occupation string, factors schema.ComplexityFactors, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, factors)
		}, "Wrote JSON complexity factors")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForComplexity(csvWriter, factors, fmtFloat)
		}, "Wrote CSV complexity factors")
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeComplexityTable(w, occupation, factors, cfg, fmtFloat)
		}, "Wrote complexity table")
	}
}

// complexityRows flattens the four factors into (name, score) rows in a fixed
// order.
func complexityRows(factors schema.ComplexityFactors) []struct {
	Name  string
	Score float64
} {
	return []struct {
		Name  string
		Score float64
	}{
		{"task_complexity", factors.TaskComplexity},
		{"skill_requirements", factors.SkillRequirements},
		{"technological_sophistication", factors.TechnologicalSophistication},
		{"decision_making_autonomy", factors.DecisionMakingAutonomy},
	}
}

// writeComplexityTable generates and writes the human-readable table.
func writeComplexityTable(w io.Writer, occupation string, factors schema.ComplexityFactors, cfg *contract.Config, fmtFloat func(float64) string) error {
	label := labelFunc(cfg)

	title := fmt.Sprintf("Occupation Complexity: %s", occupation)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🧩", title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range complexityRows(factors) {
		data = append(data, []string{row.Name, fmtFloat(row.Score), label(row.Score)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForComplexity writes the complexity factors in CSV format.
func writeCSVResultsForComplexity(w *csv.Writer, factors schema.ComplexityFactors, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"factor",
		"score",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range complexityRows(factors) {
		rec := []string{
			row.Name,
			fmtFloat(row.Score),
			contract.GetPlainLabel(row.Score),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

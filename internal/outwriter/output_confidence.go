package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintConfidenceResults outputs a confidence assessment, dispatching based on the output format configured.
func PrintConfidenceResults(technology string, score schema.ConfidenceScore, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, score)
		}, "Wrote JSON confidence assessment")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForConfidence(csvWriter, score, fmtFloat)
		}, "Wrote CSV confidence assessment")
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeConfidenceTable(w, technology, score, cfg, fmtFloat)
		}, "Wrote confidence table")
	}
}

// sortedMetricNames returns the metric names in deterministic order.
func sortedMetricNames(metrics map[string]float64) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeConfidenceTable generates and writes the human-readable table.
func writeConfidenceTable(w io.Writer, technology string, score schema.ConfidenceScore, cfg *contract.Config, fmtFloat func(float64) string) error {
	label := labelFunc(cfg)

	title := fmt.Sprintf("Prediction Confidence: %s", technology)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🎯", title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, name := range sortedMetricNames(score.Metrics) {
		data = append(data, []string{name, fmtFloat(score.Metrics[name]), label(score.Metrics[name])})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Overall: %s | Reliability: %s\n",
		fmtFloat(score.Overall), fmtFloat(score.Reliability)); err != nil {
		return err
	}
	for _, rec := range score.Recommendations {
		if _, err := fmt.Fprintf(w, "  - %s\n", rec); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForConfidence writes the confidence assessment in CSV
// format, one metric per row with the summary columns repeated.
func writeCSVResultsForConfidence(w *csv.Writer, score schema.ConfidenceScore, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"metric",
		"score",
		"label",
		"overall",
		"reliability",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, name := range sortedMetricNames(score.Metrics) {
		rec := []string{
			name,
			fmtFloat(score.Metrics[name]),
			contract.GetPlainLabel(score.Metrics[name]),
			fmtFloat(score.Overall),
			fmtFloat(score.Reliability),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

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

// PrintImpactResults outputs short/medium/long-term impact metrics, dispatching based on the output format configured.
func PrintImpactResults(technology string, metrics schema.ImpactMetrics, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, metrics)
		}, "Wrote JSON impact metrics")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForImpact(csvWriter, metrics, fmtFloat)
		}, "Wrote CSV impact metrics")
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeImpactTable(w, technology, metrics, cfg, fmtFloat)
		}, "Wrote impact table")
	}
}

// writeImpactTable generates and writes the human-readable table.
func writeImpactTable(w io.Writer, technology string, metrics schema.ImpactMetrics, cfg *contract.Config, fmtFloat func(float64) string) error {
	label := labelFunc(cfg)

	title := fmt.Sprintf("Technology Impact Horizon: %s", technology)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🌐", title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Term", "Impact", "Label", "Confidence"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Short (~1y)", fmtFloat(metrics.ShortTerm.Impact), label(metrics.ShortTerm.Impact), fmtFloat(metrics.ShortTerm.Confidence)},
		{"Medium (~3y)", fmtFloat(metrics.MediumTerm.Impact), label(metrics.MediumTerm.Impact), fmtFloat(metrics.MediumTerm.Confidence)},
		{"Long (~5y+)", fmtFloat(metrics.LongTerm.Impact), label(metrics.LongTerm.Impact), fmtFloat(metrics.LongTerm.Confidence)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForImpact writes the impact metrics in CSV format.
func writeCSVResultsForImpact(w *csv.Writer, metrics schema.ImpactMetrics, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"term",
		"impact",
		"label",
		"confidence",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	rows := []struct {
		term   string
		metric schema.ImpactMetric
	}{
		{"short_term", metrics.ShortTerm},
		{"medium_term", metrics.MediumTerm},
		{"long_term", metrics.LongTerm},
	}
	for _, row := range rows {
		rec := []string{
			row.term,
			fmtFloat(row.metric.Impact),
			contract.GetPlainLabel(row.metric.Impact),
			fmtFloat(row.metric.Confidence),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCorrelationResults outputs a historical correlation analysis, dispatching based on the output format configured.
func PrintCorrelationResults(technology string, result schema.CorrelationResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printCorrelationJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCorrelationCSVResults(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeCorrelationTable(w, technology, result, cfg, fmtFloat, duration)
		}, "Wrote correlation table")
	}
	return nil
}

// printCorrelationJSONResults handles opening the file and calling the JSON writer.
func printCorrelationJSONResults(result schema.CorrelationResult, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON correlation results")
}

// printCorrelationCSVResults handles opening the file and calling the CSV writer.
func printCorrelationCSVResults(result schema.CorrelationResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForCorrelation(csvWriter, result, fmtFloat)
	}, "Wrote CSV correlation results")
}

// sortedFactorNames returns the factor names in deterministic order so table
// and CSV rows do not shuffle between runs.
func sortedFactorNames(correlations map[string]float64) []string {
	names := make([]string, 0, len(correlations))
	for name := range correlations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeCorrelationTable generates and writes the human-readable table.
func writeCorrelationTable(w io.Writer, technology string, result schema.CorrelationResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	title := fmt.Sprintf("Historical Correlation: %s", technology)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "📊", title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Correlation", "Key"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	keyFactors := make(map[string]struct{}, len(result.KeyFactors))
	for _, factor := range result.KeyFactors {
		keyFactors[factor] = struct{}{}
	}

	var data [][]string
	for _, name := range sortedFactorNames(result.FactorCorrelations) {
		key := ""
		if _, ok := keyFactors[name]; ok {
			key = "yes"
		}
		data = append(data, []string{name, fmtFloat(result.FactorCorrelations[name]), key})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Trend: %s | Correlation: %s | Confidence: %s | Reliability: %s | Samples: %d\n",
		result.TrendDirection, fmtFloat(result.CorrelationScore), fmtFloat(result.Confidence),
		fmtFloat(result.Reliability), result.SampleSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Correlation completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintProjectionResults outputs multi-year projections, dispatching based on the output format configured.
func PrintProjectionResults(technology string, projections []schema.TimeBasedProjection, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printProjectionJSONResults(projections, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printProjectionCSVResults(projections, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeProjectionTable(w, technology, projections, cfg, fmtFloat, duration)
		}, "Wrote projection table")
	}
	return nil
}

// printProjectionJSONResults handles opening the file and calling the JSON writer.
func printProjectionJSONResults(projections []schema.TimeBasedProjection, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeJSONResultsForProjections(w, projections)
	}, "Wrote JSON projections")
}

// printProjectionCSVResults handles opening the file and calling the CSV writer.
func printProjectionCSVResults(projections []schema.TimeBasedProjection, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForProjections(csvWriter, projections, fmtFloat)
	}, "Wrote CSV projections")
}

// writeProjectionTable generates and writes the human-readable table.
func writeProjectionTable(w io.Writer, technology string, projections []schema.TimeBasedProjection, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	label := labelFunc(cfg)

	title := fmt.Sprintf("Automation Potential Projection: %s", technology)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "📈", title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Year", "Score", "Label", "Confidence", "Key Factors"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range projections {
		row := []string{
			strconv.Itoa(p.Year),
			fmtFloat(p.Score),
			label(p.Score),
			fmtFloat(p.Confidence),
			strings.Join(p.KeyFactors, ", "),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Projected %d years. Analysis completed in %v with %d workers. Cache backend: %s\n",
		len(projections), duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

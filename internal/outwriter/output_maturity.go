package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
)

// PrintMaturityResults outputs a maturity assessment, dispatching based on the output format configured.
func PrintMaturityResults(technology string, assessment schema.MaturityAssessment, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, assessment)
		}, "Wrote JSON maturity assessment")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForMaturity(csvWriter, assessment)
		}, "Wrote CSV maturity assessment")
	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeMaturityText(w, technology, assessment, cfg)
		}, "Wrote maturity assessment")
	}
}

// writeMaturityText renders the assessment as plain summary lines. The result
// is three scalar facts, so a table adds nothing here.
func writeMaturityText(w io.Writer, technology string, assessment schema.MaturityAssessment, cfg *contract.Config) error {
	title := fmt.Sprintf("Maturity Assessment: %s", technology)
	if _, err := fmt.Fprintln(w, sectionTitle(cfg, "🌱", title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Current level:   %s\n", assessment.CurrentLevel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Projected level: %s\n", assessment.ProjectedLevel); err != nil {
		return err
	}
	if assessment.TimeToNextLevel < 0 {
		_, err := fmt.Fprintln(w, "No further lifecycle advancement is modeled.")
		return err
	}
	_, err := fmt.Fprintf(w, "Months to next level: %d\n", assessment.TimeToNextLevel)
	return err
}

// writeCSVResultsForMaturity writes the assessment in CSV format.
func writeCSVResultsForMaturity(w *csv.Writer, assessment schema.MaturityAssessment) error {
	header := []string{
		"current_level",
		"projected_level",
		"time_to_next_level",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	rec := []string{
		string(assessment.CurrentLevel),
		string(assessment.ProjectedLevel),
		strconv.Itoa(assessment.TimeToNextLevel),
	}
	return w.Write(rec)
}

package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
)

// writeJSONResultsForProjections writes the projections in JSON format with a
// severity label added to each year.
func writeJSONResultsForProjections(w io.Writer, projections []schema.TimeBasedProjection) error {
	type JSONProjectionResult struct {
		Label string `json:"label"`
		schema.TimeBasedProjection
	}

	output := make([]JSONProjectionResult, len(projections))
	for i, p := range projections {
		output[i] = JSONProjectionResult{
			Label:               contract.GetPlainLabel(p.Score),
			TimeBasedProjection: p,
		}
	}

	return writeJSON(w, output)
}

// writeCSVResultsForProjections writes the projections in CSV format.
func writeCSVResultsForProjections(w *csv.Writer, projections []schema.TimeBasedProjection, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"year",
		"score",
		"label",
		"confidence",
		"key_factors",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range projections {
		rec := []string{
			strconv.Itoa(p.Year),
			fmtFloat(p.Score),
			contract.GetPlainLabel(p.Score),
			fmtFloat(p.Confidence),
			strings.Join(p.KeyFactors, "|"),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

package outwriter

import (
	"encoding/csv"
	"strconv"

	"github.com/apolabs/autoscope/schema"
)

// writeCSVResultsForCorrelation writes the correlation analysis in CSV
// format, one factor per row with the summary columns repeated.
func writeCSVResultsForCorrelation(w *csv.Writer, result schema.CorrelationResult, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"factor",
		"correlation",
		"key_factor",
		"trend_direction",
		"correlation_score",
		"confidence",
		"reliability",
		"sample_size",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	keyFactors := make(map[string]struct{}, len(result.KeyFactors))
	for _, factor := range result.KeyFactors {
		keyFactors[factor] = struct{}{}
	}

	for _, name := range sortedFactorNames(result.FactorCorrelations) {
		isKey := "no"
		if _, ok := keyFactors[name]; ok {
			isKey = "yes"
		}
		rec := []string{
			name,
			fmtFloat(result.FactorCorrelations[name]),
			isKey,
			string(result.TrendDirection),
			fmtFloat(result.CorrelationScore),
			fmtFloat(result.Confidence),
			fmtFloat(result.Reliability),
			strconv.Itoa(result.SampleSize),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

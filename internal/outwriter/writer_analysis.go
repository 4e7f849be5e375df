package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
)

// writeJSONResultsForAnalysis marshals the analysis to JSON with severity
// labels added for the headline scores.
func writeJSONResultsForAnalysis(w io.Writer, analysis *schema.EmergingTechAnalysis) error {
	type JSONAnalysisResult struct {
		Labels map[string]string `json:"labels"`
		*schema.EmergingTechAnalysis
	}

	output := JSONAnalysisResult{
		Labels: map[string]string{
			"automation_risk":        contract.GetPlainLabel(analysis.JobImpact.AutomationRisk),
			"augmentation_potential": contract.GetPlainLabel(analysis.JobImpact.AugmentationPotential),
			"skill_gap_severity":     contract.GetPlainLabel(analysis.SkillGaps.GapSeverity),
			"readiness":              contract.GetPlainLabel(analysis.Readiness.OverallScore),
		},
		EmergingTechAnalysis: analysis,
	}

	return writeJSON(w, output)
}

// writeCSVResultsForAnalysis writes the scalar analysis metrics in CSV
// format, one metric per row.
func writeCSVResultsForAnalysis(w *csv.Writer, analysis *schema.EmergingTechAnalysis, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"technology_id",
		"technology",
		"industry",
		"section",
		"metric",
		"value",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	rows := []struct {
		section string
		metric  string
		value   float64
	}{
		{"job_impact", "automation_risk", analysis.JobImpact.AutomationRisk},
		{"job_impact", "augmentation_potential", analysis.JobImpact.AugmentationPotential},
		{"job_impact", "new_role_creation", analysis.JobImpact.NewRoleCreation},
		{"job_impact", "skill_transferability", analysis.JobImpact.SkillTransferability},
		{"skill_gaps", "gap_severity", analysis.SkillGaps.GapSeverity},
		{"skill_gaps", "market_availability", analysis.SkillGaps.MarketAvailability},
		{"readiness", "technical_readiness", analysis.Readiness.TechnicalReadiness},
		{"readiness", "resource_readiness", analysis.Readiness.ResourceReadiness},
		{"readiness", "cultural_readiness", analysis.Readiness.CulturalReadiness},
		{"readiness", "overall_score", analysis.Readiness.OverallScore},
		{"timeline", "total_months", analysis.Timeline.TotalMonths},
		{"timeline", "confidence_level", analysis.Timeline.ConfidenceLevel},
	}
	for _, row := range rows {
		rec := []string{
			analysis.TechnologyID,
			analysis.Technology,
			analysis.Industry,
			row.section,
			row.metric,
			fmtFloat(row.value),
			contract.GetPlainLabel(row.value),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

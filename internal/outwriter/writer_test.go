package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjections() []schema.TimeBasedProjection {
	return []schema.TimeBasedProjection{
		{Year: 2027, Score: 0.55, Confidence: 0.8, KeyFactors: []string{"maturity"}},
		{Year: 2028, Score: 0.63, Confidence: 0.7, KeyFactors: []string{"maturity", "market_growth"}},
	}
}

func sampleAnalysis() *schema.EmergingTechAnalysis {
	return &schema.EmergingTechAnalysis{
		TechnologyID: "tech-001",
		Technology:   "Document AI",
		Industry:     "Healthcare",
		JobImpact: schema.JobImpactAnalysis{
			AutomationRisk:        0.72,
			AugmentationPotential: 0.81,
			NewRoleCreation:       0.4,
			SkillTransferability:  0.6,
			MitigationStrategies:  []string{"Invest in reskilling programs"},
		},
		SkillGaps: schema.SkillGapAnalysis{
			GapSeverity:        0.5,
			MarketAvailability: 0.65,
			TrainingNeeds: []schema.TrainingNeed{
				{Skill: "Prompt engineering", Priority: schema.HighPriority, MonthsToAcquire: 3, Resources: []string{"Online course"}},
			},
		},
		Readiness: schema.ImplementationReadiness{
			TechnicalReadiness: 0.7,
			ResourceReadiness:  0.6,
			CulturalReadiness:  0.8,
			OverallScore:       0.7,
			Recommendations: []schema.ReadinessRecommendation{
				{Category: "monitoring", Priority: schema.LowPriority, Action: "Review quarterly", Timeline: "ongoing"},
			},
		},
		Timeline: schema.TimelineProjection{
			Phases: []schema.ImplementationPhase{
				{Name: "Pilot", StartMonth: 0, Duration: 3},
				{Name: "Rollout", StartMonth: 3, Duration: 9},
			},
			CriticalPath:    []string{"Pilot", "Rollout"},
			TotalMonths:     12,
			ConfidenceLevel: 0.75,
		},
	}
}

func testConfig() *contract.Config {
	return &contract.Config{
		Workers:      4,
		Precision:    2,
		Output:       schema.TextOut,
		Width:        100,
		CacheBackend: schema.NoneBackend,
	}
}

func TestWriteCSVResultsForProjections(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForProjections(w, sampleProjections(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"year", "score", "label", "confidence", "key_factors"}, records[0])
	assert.Equal(t, []string{"2027", "0.55", "Moderate", "0.80", "maturity"}, records[1])
	assert.Equal(t, "maturity|market_growth", records[2][4])
}

func TestWriteJSONResultsForProjections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForProjections(&buf, sampleProjections()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Moderate", decoded[0]["label"])
	assert.Equal(t, float64(2027), decoded[0]["year"])
}

func TestWriteCSVResultsForAnalysis(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForAnalysis(w, sampleAnalysis(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13) // header + 12 metrics

	assert.Equal(t, []string{"tech-001", "Document AI", "Healthcare", "job_impact", "automation_risk", "0.72", "High"}, records[1])
}

func TestWriteJSONResultsForAnalysis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForAnalysis(&buf, sampleAnalysis()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tech-001", decoded["technology_id"])

	labels, ok := decoded["labels"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "High", labels["automation_risk"])
	assert.Equal(t, "Critical", labels["augmentation_potential"])
}

func TestWriteAnalysisText(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)

	err := writeAnalysisText(&buf, sampleAnalysis(), testConfig(), fmtFloat, 5*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Technology Impact Analysis: Document AI [Healthcare]")
	assert.Contains(t, out, "Automation risk")
	assert.Contains(t, out, "Prompt engineering")
	assert.Contains(t, out, "Critical path: Pilot -> Rollout")
	assert.Contains(t, out, "Cache backend: none")
}

func TestWriteProjectionTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)

	err := writeProjectionTable(&buf, "Document AI", sampleProjections(), testConfig(), fmtFloat, 5*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Automation Potential Projection: Document AI")
	assert.Contains(t, out, "2027")
	assert.Contains(t, out, "Projected 2 years")
}

func TestWriteCSVResultsForCorrelation(t *testing.T) {
	result := schema.CorrelationResult{
		CorrelationScore: 0.67,
		FactorCorrelations: map[string]float64{
			schema.FactorTechnologyImpact: 0.9,
			schema.FactorIndustryAdoption: 0.4,
			schema.FactorMarketGrowth:     -0.8,
		},
		TrendDirection: schema.TrendIncreasing,
		KeyFactors:     []string{schema.FactorTechnologyImpact, schema.FactorMarketGrowth},
		Reliability:    0.7,
		Confidence:     0.75,
		SampleSize:     12,
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForCorrelation(w, result, fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Factors are sorted alphabetically.
	assert.Equal(t, schema.FactorIndustryAdoption, records[1][0])
	assert.Equal(t, "no", records[1][2])
	assert.Equal(t, schema.FactorMarketGrowth, records[2][0])
	assert.Equal(t, "yes", records[2][2])
	assert.Equal(t, "12", records[3][7])
}

func TestWriteCSVResultsForConfidence(t *testing.T) {
	score := schema.ConfidenceScore{
		Overall:     0.68,
		Reliability: 0.6,
		Metrics: map[string]float64{
			schema.MetricDataQuality:  0.9,
			schema.MetricTechMaturity: 0.5,
		},
		Recommendations: []string{"Collect more historical data"},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForConfidence(w, score, fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, schema.MetricDataQuality, records[1][0])
	assert.Equal(t, "0.68", records[1][3])
}

func TestWriteCSVResultsForComplexity(t *testing.T) {
	factors := schema.ComplexityFactors{
		TaskComplexity:              0.53,
		SkillRequirements:           0.35,
		TechnologicalSophistication: 0.39,
		DecisionMakingAutonomy:      0.82,
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForComplexity(w, factors, fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"task_complexity", "0.53", "Moderate"}, records[1])
	assert.Equal(t, []string{"decision_making_autonomy", "0.82", "Critical"}, records[4])
}

func TestWriteMaturityText(t *testing.T) {
	var buf bytes.Buffer

	assessment := schema.MaturityAssessment{
		CurrentLevel:    schema.Growth,
		ProjectedLevel:  schema.Mature,
		TimeToNextLevel: 18,
	}
	require.NoError(t, writeMaturityText(&buf, "Document AI", assessment, testConfig()))
	assert.Contains(t, buf.String(), "Months to next level: 18")

	buf.Reset()
	assessment.TimeToNextLevel = -1
	require.NoError(t, writeMaturityText(&buf, "Document AI", assessment, testConfig()))
	assert.Contains(t, buf.String(), "No further lifecycle advancement")
}

func TestWriteCSVResultsForImpact(t *testing.T) {
	metrics := schema.ImpactMetrics{
		ShortTerm:  schema.ImpactMetric{Impact: 0.7, Confidence: 0.9},
		MediumTerm: schema.ImpactMetric{Impact: 0.56, Confidence: 0.7},
		LongTerm:   schema.ImpactMetric{Impact: 0.42, Confidence: 0.5},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForImpact(w, metrics, fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"short_term", "0.70", "High", "0.90"}, records[1])
	assert.Equal(t, []string{"long_term", "0.42", "Moderate", "0.50"}, records[3])
}

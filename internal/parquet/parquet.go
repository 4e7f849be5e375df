// Package parquet provides data structures and functions for exporting
// analysis run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/apolabs/autoscope/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single analysis run with metadata.
// This struct maps to the autoscope_runs database table.
type Run struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalTechnologies is the number of technologies analyzed in this run
	TotalTechnologies int32 `parquet:"total_technologies,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// TechnologyScores represents the final scores for one technology in a run.
// This struct maps to the autoscope_scores database table.
type TechnologyScores struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// TechnologyID identifies the technology record that was analyzed
	TechnologyID string `parquet:"technology_id,snappy"`

	// AnalysisTime is when this technology was analyzed
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// Industry is the industry context of the analysis
	Industry string `parquet:"industry,snappy"`

	// AutomationRisk is the job displacement risk (0-1)
	AutomationRisk float64 `parquet:"automation_risk,snappy"`

	// AugmentationPotential is the job enhancement potential (0-1)
	AugmentationPotential float64 `parquet:"augmentation_potential,snappy"`

	// SkillGapSeverity is the aggregate skill gap severity (0-1)
	SkillGapSeverity float64 `parquet:"skill_gap_severity,snappy"`

	// ReadinessScore is the overall implementation readiness (0-1)
	ReadinessScore float64 `parquet:"readiness_score,snappy"`

	// TimelineMonths is the projected implementation duration in months
	TimelineMonths float64 `parquet:"timeline_months,snappy"`

	// Confidence is the overall prediction confidence (0-1)
	Confidence float64 `parquet:"confidence,snappy"`
}

// Projection represents one projected year for a technology in a run.
// This struct maps to the autoscope_projections database table.
type Projection struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// TechnologyID identifies the technology record that was projected
	TechnologyID string `parquet:"technology_id,snappy"`

	// AnalysisTime is when this projection was computed
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// ProjectionYear is the calendar year this row projects
	ProjectionYear int32 `parquet:"projection_year,snappy"`

	// Score is the projected automation potential (0-1)
	Score float64 `parquet:"score,snappy"`

	// Confidence is the projection confidence (0-1)
	Confidence float64 `parquet:"confidence,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteScoresParquet writes a slice of TechnologyScores structs to a Parquet file.
func WriteScoresParquet(data []TechnologyScores, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the TechnologyScores struct tags
	writer := parquet.NewGenericWriter[TechnologyScores](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteProjectionsParquet writes a slice of Projection structs to a Parquet file.
func WriteProjectionsParquet(data []Projection, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Projection struct tags
	writer := parquet.NewGenericWriter[Projection](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchRuns generates sample Run data for demonstration.
func MockFetchRuns() []Run {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 30*time.Minute)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"command":"analyze","industry":"Healthcare","skills":3}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-23 * time.Hour)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"command":"project","years":5,"base_score":0.4}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []Run{
		{
			RunID:             1,
			StartTime:         startTime1,
			EndTime:           &endTime1,
			RunDurationMs:     &durationMs1,
			TotalTechnologies: 1,
			ConfigParams:      &configParams1,
		},
		{
			RunID:             2,
			StartTime:         startTime2,
			EndTime:           &endTime2,
			RunDurationMs:     &durationMs2,
			TotalTechnologies: 1,
			ConfigParams:      &configParams2,
		},
		{
			RunID:             3,
			StartTime:         startTime3,
			EndTime:           nil, // Still running - nullable field
			RunDurationMs:     nil, // Not yet calculated - nullable field
			TotalTechnologies: 0,
			ConfigParams:      nil, // No config stored - nullable field
		},
	}
}

// MockFetchTechnologyScores generates sample TechnologyScores data for demonstration.
func MockFetchTechnologyScores() []TechnologyScores {
	now := time.Now()

	return []TechnologyScores{
		{
			RunID:                 1,
			TechnologyID:          "tech-001",
			AnalysisTime:          now.Add(-1 * time.Hour),
			Industry:              "Healthcare",
			AutomationRisk:        0.72,
			AugmentationPotential: 0.58,
			SkillGapSeverity:      0.44,
			ReadinessScore:        0.61,
			TimelineMonths:        18,
			Confidence:            0.67,
		},
		{
			RunID:                 2,
			TechnologyID:          "tech-002",
			AnalysisTime:          now.Add(-23 * time.Hour),
			Industry:              "Finance",
			AutomationRisk:        0.39,
			AugmentationPotential: 0.81,
			SkillGapSeverity:      0.25,
			ReadinessScore:        0.74,
			TimelineMonths:        12,
			Confidence:            0.71,
		},
	}
}

// MockFetchProjections generates sample Projection data for demonstration.
func MockFetchProjections() []Projection {
	now := time.Now()
	year := int32(now.Year())

	return []Projection{
		{RunID: 2, TechnologyID: "tech-002", AnalysisTime: now.Add(-23 * time.Hour), ProjectionYear: year + 1, Score: 0.44, Confidence: 0.85},
		{RunID: 2, TechnologyID: "tech-002", AnalysisTime: now.Add(-23 * time.Hour), ProjectionYear: year + 2, Score: 0.49, Confidence: 0.72},
		{RunID: 2, TechnologyID: "tech-002", AnalysisTime: now.Add(-23 * time.Hour), ProjectionYear: year + 3, Score: 0.55, Confidence: 0.61},
	}
}

// ConvertRunRecords converts database run records to their Parquet representation.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, r := range records {
		result[i] = Run{
			RunID:             r.RunID,
			StartTime:         r.StartTime,
			EndTime:           r.EndTime,
			RunDurationMs:     r.RunDurationMs,
			TotalTechnologies: r.TotalTechnologies,
			ConfigParams:      r.ConfigParams,
		}
	}
	return result
}

// ConvertScoreRows converts database score rows to their Parquet representation.
func ConvertScoreRows(rows []schema.ScoreRow) []TechnologyScores {
	result := make([]TechnologyScores, len(rows))
	for i, r := range rows {
		result[i] = TechnologyScores{
			RunID:                 r.RunID,
			TechnologyID:          r.TechnologyID,
			AnalysisTime:          r.AnalysisTime,
			Industry:              r.Industry,
			AutomationRisk:        r.AutomationRisk,
			AugmentationPotential: r.AugmentationPotential,
			SkillGapSeverity:      r.SkillGapSeverity,
			ReadinessScore:        r.ReadinessScore,
			TimelineMonths:        r.TimelineMonths,
			Confidence:            r.Confidence,
		}
	}
	return result
}

// ConvertProjectionRows converts database projection rows to their Parquet representation.
func ConvertProjectionRows(rows []schema.ProjectionRow) []Projection {
	result := make([]Projection, len(rows))
	for i, r := range rows {
		result[i] = Projection{
			RunID:          r.RunID,
			TechnologyID:   r.TechnologyID,
			AnalysisTime:   r.AnalysisTime,
			ProjectionYear: int32(r.Year),
			Score:          r.Score,
			Confidence:     r.Confidence,
		}
	}
	return result
}

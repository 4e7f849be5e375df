package schema

import "time"

// CacheStatus represents the status of the result cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunStatus represents the status of the analysis run store.
type RunStatus struct {
	Backend           string           `json:"backend"`
	Connected         bool             `json:"connected"`
	TotalRuns         int              `json:"total_runs"`
	LastRunID         int64            `json:"last_run_id"`
	LastRunTime       time.Time        `json:"last_run_time"`
	OldestRunTime     time.Time        `json:"oldest_run_time"`
	TotalTechnologies int              `json:"total_technologies"`
	TableSizes        map[string]int64 `json:"table_sizes"`
}

// ScoreRecord represents the final scores for a technology within a run.
type ScoreRecord struct {
	AnalysisTime          time.Time
	Industry              string
	AutomationRisk        float64
	AugmentationPotential float64
	SkillGapSeverity      float64
	ReadinessScore        float64
	TimelineMonths        float64
	Confidence            float64
}

// ProjectionRecord represents a single projected year for a technology
// within a run.
type ProjectionRecord struct {
	AnalysisTime time.Time
	Year         int
	Score        float64
	Confidence   float64
}

// RunRecord represents a row from the autoscope_runs table.
type RunRecord struct {
	RunID             int64
	StartTime         time.Time
	EndTime           *time.Time
	RunDurationMs     *int32
	TotalTechnologies int32
	ConfigParams      *string
}

// ScoreRow represents a row from the autoscope_scores table.
type ScoreRow struct {
	RunID                 int64
	TechnologyID          string
	AnalysisTime          time.Time
	Industry              string
	AutomationRisk        float64
	AugmentationPotential float64
	SkillGapSeverity      float64
	ReadinessScore        float64
	TimelineMonths        float64
	Confidence            float64
}

// ProjectionRow represents a row from the autoscope_projections table.
type ProjectionRow struct {
	RunID        int64
	TechnologyID string
	AnalysisTime time.Time
	Year         int
	Score        float64
	Confidence   float64
}

package schema

import "time"

// TimeBasedProjection is one projected year of automation potential.
// Rows are always ordered by year ascending.
type TimeBasedProjection struct {
	Year       int      `json:"year"`
	Score      float64  `json:"score"`      // Projected automation potential (0-1)
	Confidence float64  `json:"confidence"` // Projection confidence (0-1), non-increasing across years
	KeyFactors []string `json:"key_factors"`
}

// ImpactMetric is one term's projected impact with its confidence.
type ImpactMetric struct {
	Impact     float64 `json:"impact"`
	Confidence float64 `json:"confidence"`
}

// ImpactMetrics holds short, medium and long-term impact projections.
type ImpactMetrics struct {
	ShortTerm  ImpactMetric `json:"short_term"`  // ~1 year horizon
	MediumTerm ImpactMetric `json:"medium_term"` // ~3 year horizon
	LongTerm   ImpactMetric `json:"long_term"`   // ~5+ year horizon
}

// MaturityAssessment projects a technology's lifecycle stage forward.
type MaturityAssessment struct {
	CurrentLevel   MaturityLevel `json:"current_level"`
	ProjectedLevel MaturityLevel `json:"projected_level"`
	// TimeToNextLevel is the months until the next lifecycle stage, or -1
	// once the technology is Mature or Declining (no further advancement
	// is modeled).
	TimeToNextLevel int `json:"time_to_next_level"`
}

// HistoricalDataPoint is one past observation of an automation score and the
// three factor scores underlying it.
type HistoricalDataPoint struct {
	Timestamp        time.Time `json:"timestamp"`
	AutomationScore  float64   `json:"automation_score"`
	TechnologyImpact float64   `json:"technology_impact"`
	IndustryAdoption float64   `json:"industry_adoption"`
	MarketGrowth     float64   `json:"market_growth"`
}

// CorrelationResult relates the historical automation-score series to its
// underlying factor series.
type CorrelationResult struct {
	CorrelationScore   float64            `json:"correlation_score"` // Mean absolute factor correlation (0-1)
	FactorCorrelations map[string]float64 `json:"factor_correlations"`
	TrendDirection     TrendDirection     `json:"trend_direction"`
	KeyFactors         []string           `json:"key_factors"` // Factors with |r| > 0.7
	Reliability        float64            `json:"reliability"`
	Confidence         float64            `json:"confidence"`
	SampleSize         int                `json:"sample_size"` // Points inside the analysis window
}

// ConfidenceScore is the independent confidence/reliability assessment for a
// prediction.
type ConfidenceScore struct {
	Overall         float64            `json:"overall"`
	Reliability     float64            `json:"reliability"` // Capped by the weakest metric
	Metrics         map[string]float64 `json:"metrics"`     // Keyed by Metric* constants
	Recommendations []string           `json:"recommendations"`
}

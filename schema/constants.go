package schema

// Custom string types for type safety.
type (
	// MaturityLevel represents a technology's lifecycle stage.
	MaturityLevel string

	// DemandTrend represents the market demand trajectory of a skill.
	DemandTrend string

	// TrendDirection represents the direction of a historical trend.
	TrendDirection string

	// Priority represents the urgency of a training need or recommendation.
	Priority string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for run tracking and caching.
	StoreBackend string
)

// All maturity levels, ordered from earliest to latest lifecycle stage.
const (
	Experimental MaturityLevel = "Experimental"
	Emerging     MaturityLevel = "Emerging"
	Growth       MaturityLevel = "Growth"
	Mature       MaturityLevel = "Mature"
	Declining    MaturityLevel = "Declining"
)

// MaturityOrder is the canonical lifecycle ordering used when advancing a
// technology's maturity level over time.
var MaturityOrder = []MaturityLevel{Experimental, Emerging, Growth, Mature, Declining}

// MaturityIndex returns the position of a level in MaturityOrder, or -1 for
// an unknown level.
func MaturityIndex(level MaturityLevel) int {
	for i, l := range MaturityOrder {
		if l == level {
			return i
		}
	}
	return -1
}

// All demand trends supported.
const (
	DemandIncreasing DemandTrend = "increasing"
	DemandStable     DemandTrend = "stable"
	DemandDecreasing DemandTrend = "decreasing"
)

// All trend directions supported.
const (
	TrendIncreasing TrendDirection = "increasing"
	TrendStable     TrendDirection = "stable"
	TrendDecreasing TrendDirection = "decreasing"
)

// All priorities supported.
const (
	HighPriority   Priority = "high"
	MediumPriority Priority = "medium"
	LowPriority    Priority = "low"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidMaturityLevels lists all valid maturity levels.
var ValidMaturityLevels = map[MaturityLevel]struct{}{
	Experimental: {},
	Emerging:     {},
	Growth:       {},
	Mature:       {},
	Declining:    {},
}

// MaturityWeights maps each maturity level to its projection weight. These
// are caller-documented constants, never derived at runtime, so projections
// stay deterministic for identical inputs.
var MaturityWeights = map[MaturityLevel]float64{
	Experimental: 0.2,
	Emerging:     0.4,
	Growth:       0.6,
	Mature:       0.8,
	Declining:    0.3,
}

// Impact term multipliers for short/medium/long-term impact projection.
const (
	ShortTermMultiplier  = 1.0
	MediumTermMultiplier = 0.8
	LongTermMultiplier   = 0.6
)

// Combined-impact weights for time-based projection: maturity, adoption,
// market growth, historical trend.
const (
	MaturityImpactWeight  = 0.3
	AdoptionImpactWeight  = 0.3
	MarketImpactWeight    = 0.2
	HistoricalTrendWeight = 0.2
)

// Confidence metric weights, in metric order: data quality, prediction
// horizon, market stability, technology maturity, industry relevance.
const (
	DataQualityWeight       = 0.25
	PredictionHorizonWeight = 0.20
	MarketStabilityWeight   = 0.15
	TechMaturityWeight      = 0.25
	IndustryRelevanceWeight = 0.15
)

// GetConfidenceWeights returns the fixed blend weights for the five
// confidence metrics keyed by metric name.
func GetConfidenceWeights() map[string]float64 {
	return map[string]float64{
		MetricDataQuality:       DataQualityWeight,
		MetricPredictionHorizon: PredictionHorizonWeight,
		MetricMarketStability:   MarketStabilityWeight,
		MetricTechMaturity:      TechMaturityWeight,
		MetricIndustryRelevance: IndustryRelevanceWeight,
	}
}

// Confidence metric names.
const (
	MetricDataQuality       = "data_quality"
	MetricPredictionHorizon = "prediction_horizon"
	MetricMarketStability   = "market_stability"
	MetricTechMaturity      = "technology_maturity"
	MetricIndustryRelevance = "industry_relevance"
)

// Historical factor names used in correlation analysis and projection
// factor attribution.
const (
	FactorTechnologyImpact = "technology_impact"
	FactorIndustryAdoption = "industry_adoption"
	FactorMarketGrowth     = "market_growth"
	FactorHistoricalTrend  = "historical_trend"
	FactorMaturity         = "maturity"
)

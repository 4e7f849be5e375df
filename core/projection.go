package core

import (
	"fmt"
	"math"
	"time"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Time-based projection constants.
const (
	maturityGrowthPerYear = 0.1 // maturity impact multiplier grows 10% per projected year
	adoptionGrowthPerYear = 0.2
	marketGrowthPerYear   = 0.1

	confidenceDecayPerYear  = 0.1
	minProjectionConfidence = 0.3
	baseConfidenceWithData  = 0.8
	baseConfidenceNoData    = 0.6

	impactConfidenceWithIndustry = 0.9
	impactConfidenceNoIndustry   = 0.7

	// Default adoption rate when neither industry data nor market
	// projections are declared.
	fallbackAdoptionRate = 0.5

	// Maturity advancement: one level every two years, floor 12 months to
	// the next level.
	yearsPerMaturityLevel = 2
	maturityBaseMonths    = 24.0
	minMonthsToNextLevel  = 12
)

// TimeBasedProjector extrapolates automation scores across future years.
// It is stateless apart from its clock and safe for concurrent use.
type TimeBasedProjector struct {
	now func() time.Time
}

// NewTimeBasedProjector creates a projector using the system clock for the
// current year.
func NewTimeBasedProjector() *TimeBasedProjector {
	return &TimeBasedProjector{now: time.Now}
}

// CalculateTimeBasedAPO projects a base automation score across the next
// projectionYears years. Each year blends maturity, adoption, market-growth
// and historical-trend impacts (0.3/0.3/0.2/0.2); the projected score is
// min(1, base*(1+combined)) and confidence decays 10% per year with a 0.3
// floor. The returned slice has exactly projectionYears rows ordered by
// year ascending.
func (p *TimeBasedProjector) CalculateTimeBasedAPO(baseScore float64, tech *schema.Technology, projectionYears int, historical []schema.HistoricalDataPoint) ([]schema.TimeBasedProjection, error) {
	if tech == nil {
		return nil, fmt.Errorf("%w: nil technology", ErrInvalidInput)
	}
	if projectionYears <= 0 {
		return nil, fmt.Errorf("%w: projection years must be positive, got %d", ErrInvalidInput, projectionYears)
	}
	if baseScore < 0 || baseScore > 1 {
		return nil, fmt.Errorf("%w: base score %.3f outside [0,1]", ErrInvalidInput, baseScore)
	}

	maturityWeight := schema.MaturityWeights[tech.MaturityLevel]
	adoptionRate, growthRate := p.marketSignals(tech, nil)
	trend := historicalTrend(historical)

	baseConfidence := baseConfidenceNoData
	if len(historical) > 0 {
		baseConfidence = baseConfidenceWithData
	}

	currentYear := p.now().Year()
	projections := make([]schema.TimeBasedProjection, 0, projectionYears)

	for k := 1; k <= projectionYears; k++ {
		years := float64(k)

		maturityImpact := maturityWeight * math.Min(1, 1+maturityGrowthPerYear*years)
		adoptionImpact := math.Min(1, adoptionRate*(1+adoptionGrowthPerYear*years))
		marketImpact := math.Min(1, (growthRate/100)*(1+marketGrowthPerYear*years))

		combined := schema.MaturityImpactWeight*maturityImpact +
			schema.AdoptionImpactWeight*adoptionImpact +
			schema.MarketImpactWeight*marketImpact +
			schema.HistoricalTrendWeight*trend

		score := math.Min(1, baseScore*(1+combined))
		confidence := math.Max(minProjectionConfidence, baseConfidence*(1-confidenceDecayPerYear*years))

		projections = append(projections, schema.TimeBasedProjection{
			Year:       currentYear + k,
			Score:      agg.Clamp01(score),
			Confidence: confidence,
			KeyFactors: projectionFactors(maturityImpact, adoptionImpact, marketImpact, trend),
		})
	}

	return projections, nil
}

// ProjectTechnologyImpact produces short, medium and long-term impact
// metrics from impactScore and the relevant adoption rate. The term
// multipliers are fixed; confidence starts higher when industry data is
// supplied.
func (p *TimeBasedProjector) ProjectTechnologyImpact(tech *schema.Technology, years int, industryData *schema.IndustryImpact) (schema.ImpactMetrics, error) {
	if tech == nil {
		return schema.ImpactMetrics{}, fmt.Errorf("%w: nil technology", ErrInvalidInput)
	}
	if years <= 0 {
		return schema.ImpactMetrics{}, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, years)
	}

	adoptionRate, _ := p.marketSignals(tech, industryData)
	base := tech.ImpactScore * adoptionRate

	baseConfidence := impactConfidenceNoIndustry
	if industryData != nil {
		baseConfidence = impactConfidenceWithIndustry
	}

	metric := func(multiplier float64) schema.ImpactMetric {
		return schema.ImpactMetric{
			Impact:     agg.Clamp01(base * multiplier),
			Confidence: agg.Clamp01(baseConfidence * multiplier),
		}
	}

	return schema.ImpactMetrics{
		ShortTerm:  metric(schema.ShortTermMultiplier),
		MediumTerm: metric(schema.MediumTermMultiplier),
		LongTerm:   metric(schema.LongTermMultiplier),
	}, nil
}

// AssessTechnologyMaturity advances the maturity level by one stage per two
// years of offset, capped at the final stage. TimeToNextLevel is -1 once
// the projected level is Mature or Declining.
func (p *TimeBasedProjector) AssessTechnologyMaturity(tech *schema.Technology, yearsOffset int) (schema.MaturityAssessment, error) {
	if tech == nil {
		return schema.MaturityAssessment{}, fmt.Errorf("%w: nil technology", ErrInvalidInput)
	}
	if yearsOffset < 0 {
		return schema.MaturityAssessment{}, fmt.Errorf("%w: years offset must not be negative, got %d", ErrInvalidInput, yearsOffset)
	}

	idx := schema.MaturityIndex(tech.MaturityLevel)
	if idx < 0 {
		return schema.MaturityAssessment{}, fmt.Errorf("%w: unknown maturity level %q", ErrInvalidInput, tech.MaturityLevel)
	}

	projected := idx + yearsOffset/yearsPerMaturityLevel
	if projected > len(schema.MaturityOrder)-1 {
		projected = len(schema.MaturityOrder) - 1
	}
	projectedLevel := schema.MaturityOrder[projected]

	assessment := schema.MaturityAssessment{
		CurrentLevel:   tech.MaturityLevel,
		ProjectedLevel: projectedLevel,
	}

	// No further advancement is modeled past Growth.
	if projectedLevel == schema.Mature || projectedLevel == schema.Declining {
		assessment.TimeToNextLevel = -1
		return assessment, nil
	}

	adoptionRate, growthRate := p.marketSignals(tech, nil)
	months := int(math.Ceil(maturityBaseMonths * (1 - adoptionRate) * (1 - growthRate/100)))
	if months < minMonthsToNextLevel {
		months = minMonthsToNextLevel
	}
	assessment.TimeToNextLevel = months

	return assessment, nil
}

// marketSignals resolves the adoption and growth rates to project with:
// explicit industry data wins, then the latest declared market projection,
// then the fallback adoption rate.
func (p *TimeBasedProjector) marketSignals(tech *schema.Technology, industryData *schema.IndustryImpact) (adoptionRate, growthRate float64) {
	if industryData != nil {
		adoptionRate = industryData.AdoptionRate
	}

	if latest := tech.LatestMarketProjection(); latest != nil {
		growthRate = latest.GrowthRate
		if industryData == nil {
			adoptionRate = latest.AdoptionRate
		}
	} else if industryData == nil {
		adoptionRate = fallbackAdoptionRate
	}

	return adoptionRate, growthRate
}

// historicalTrend is the mean of consecutive automation-score deltas, or 0
// when fewer than two points are supplied.
func historicalTrend(points []schema.HistoricalDataPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	var deltaSum float64
	for i := 1; i < len(points); i++ {
		deltaSum += points[i].AutomationScore - points[i-1].AutomationScore
	}
	return deltaSum / float64(len(points)-1)
}

// projectionFactors names the factors that contributed positively to a
// year's combined impact.
func projectionFactors(maturity, adoption, market, trend float64) []string {
	factors := []string{schema.FactorMaturity}
	if adoption > 0 {
		factors = append(factors, schema.FactorIndustryAdoption)
	}
	if market > 0 {
		factors = append(factors, schema.FactorMarketGrowth)
	}
	if trend != 0 {
		factors = append(factors, schema.FactorHistoricalTrend)
	}
	return factors
}

package core

import (
	"fmt"
	"math"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Confidence metric constants.
const (
	dataQualitySaturation = 10.0 // historical points beyond this saturate data quality
	dataQualityFloor      = 0.3  // applied below minAdequatePoints
	minAdequatePoints     = 3

	shortHorizonYears  = 2
	mediumHorizonYears = 5
	shortHorizonScore  = 0.8
	mediumHorizonScore = 0.6
	longHorizonScore   = 0.4

	// Market stability anchors: a 15% growth rate and 50% adoption are
	// treated as the most predictable regime.
	stableGrowthRate   = 15.0
	growthRateSpread   = 50.0
	stableAdoptionRate = 0.5

	// Technology maturity blends the maturity weight with declared
	// organizational readiness.
	wMaturityWeight = 0.6
	wOrgReadiness   = 0.4

	// Industry relevance timeline decay: impacts further out than this
	// many months contribute nothing.
	relevanceDecayMonths = 36.0

	// Reliability is capped by the weakest metric scaled by this factor.
	reliabilityCapFactor = 1.5

	weakMetricThreshold = 0.6
)

// Recommendation strings, one per weak metric.
var metricRecommendations = map[string]string{
	schema.MetricDataQuality:       "Collect more historical observations before trusting this prediction",
	schema.MetricPredictionHorizon: "Shorten the prediction horizon or treat distant years as indicative only",
	schema.MetricMarketStability:   "Re-run the analysis when market growth and adoption settle",
	schema.MetricTechMaturity:      "Reassess once the technology matures or organizational readiness improves",
	schema.MetricIndustryRelevance: "Validate the industry impact data against current adoption figures",
}

// ConfidenceScorer independently scores prediction confidence and
// reliability. It is immutable after construction and safe for concurrent
// use.
type ConfidenceScorer struct {
	weights map[string]float64
}

// NewConfidenceScorer creates a scorer with the default metric weights.
func NewConfidenceScorer() *ConfidenceScorer {
	return &ConfidenceScorer{weights: schema.GetConfidenceWeights()}
}

// NewConfidenceScorerWithWeights creates a scorer with a custom metric
// blend. Missing metrics get zero weight.
func NewConfidenceScorerWithWeights(weights map[string]float64) *ConfidenceScorer {
	if weights == nil {
		return NewConfidenceScorer()
	}
	return &ConfidenceScorer{weights: weights}
}

// CalculateConfidence scores five independent metrics and blends them with
// fixed weights. Reliability is min(overall, weakest*1.5): one weak metric
// caps reliability even when the average is high. A recommendation string
// is appended for every metric below 0.6.
func (s *ConfidenceScorer) CalculateConfidence(tech *schema.Technology, predictionYears int, historicalPoints int) (schema.ConfidenceScore, error) {
	if tech == nil {
		return schema.ConfidenceScore{}, fmt.Errorf("%w: nil technology", ErrInvalidInput)
	}
	if predictionYears <= 0 {
		return schema.ConfidenceScore{}, fmt.Errorf("%w: prediction years must be positive, got %d", ErrInvalidInput, predictionYears)
	}

	metrics := map[string]float64{
		schema.MetricDataQuality:       dataQuality(historicalPoints),
		schema.MetricPredictionHorizon: horizonWeight(predictionYears),
		schema.MetricMarketStability:   marketStability(tech),
		schema.MetricTechMaturity:      technologyMaturity(tech),
		schema.MetricIndustryRelevance: industryRelevance(tech),
	}

	pairs := make([]agg.Pair, 0, len(metrics))
	weakest := math.Inf(1)
	for name, value := range metrics {
		pairs = append(pairs, agg.Pair{Score: value, Weight: s.weights[name]})
		if value < weakest {
			weakest = value
		}
	}
	overall, err := agg.Combine(pairs)
	if err != nil {
		return schema.ConfidenceScore{}, err
	}

	score := schema.ConfidenceScore{
		Overall:         overall,
		Reliability:     math.Min(overall, agg.Clamp01(weakest*reliabilityCapFactor)),
		Metrics:         metrics,
		Recommendations: []string{},
	}

	// Deterministic recommendation order: metric constant order, not map
	// iteration order.
	for _, name := range []string{
		schema.MetricDataQuality,
		schema.MetricPredictionHorizon,
		schema.MetricMarketStability,
		schema.MetricTechMaturity,
		schema.MetricIndustryRelevance,
	} {
		if metrics[name] < weakMetricThreshold {
			score.Recommendations = append(score.Recommendations, metricRecommendations[name])
		}
	}

	return score, nil
}

// dataQuality saturates at dataQualitySaturation points and floors at 0.3
// below minAdequatePoints.
func dataQuality(points int) float64 {
	if points < minAdequatePoints {
		return dataQualityFloor
	}
	return agg.Saturate(float64(points), dataQualitySaturation)
}

// horizonWeight steps down as the prediction horizon lengthens.
func horizonWeight(years int) float64 {
	switch {
	case years <= shortHorizonYears:
		return shortHorizonScore
	case years <= mediumHorizonYears:
		return mediumHorizonScore
	default:
		return longHorizonScore
	}
}

// marketStability blends growth-rate closeness to the stable regime,
// adoption closeness to 50%, and the declared projection confidence. With
// no market projections all three terms are 0.
func marketStability(tech *schema.Technology) float64 {
	latest := tech.LatestMarketProjection()
	if latest == nil {
		return 0
	}

	growthCloseness := agg.Clamp01(1 - math.Abs(latest.GrowthRate-stableGrowthRate)/growthRateSpread)
	adoptionCloseness := agg.Clamp01(1 - math.Abs(latest.AdoptionRate-stableAdoptionRate)/stableAdoptionRate)

	return agg.Mean([]float64{growthCloseness, adoptionCloseness, latest.Confidence})
}

// technologyMaturity blends the maturity-level weight with mean declared
// organizational readiness.
func technologyMaturity(tech *schema.Technology) float64 {
	score, _ := agg.Combine([]agg.Pair{
		{Score: schema.MaturityWeights[tech.MaturityLevel], Weight: wMaturityWeight},
		{Score: tech.ImplementationFactors.OrganizationalReadiness.Mean(), Weight: wOrgReadiness},
	})
	return score
}

// industryRelevance blends disruption level, adoption rate and a timeline
// decay term for the technology's first declared industry impact. No
// declared impacts means no relevance signal.
func industryRelevance(tech *schema.Technology) float64 {
	if len(tech.IndustryImpacts) == 0 {
		return 0
	}
	impact := tech.IndustryImpacts[0]
	timelineScore := math.Max(0, 1-impact.MonthsToImpact/relevanceDecayMonths)

	return agg.Mean([]float64{impact.DisruptionLevel, impact.AdoptionRate, timelineScore})
}

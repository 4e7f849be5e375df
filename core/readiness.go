package core

import (
	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Readiness scoring constants.
const (
	// Requirement strings beyond this saturate infrastructure complexity.
	maxInfraRequirements = 20.0

	// Payback periods beyond this score 0 on the cost proxy.
	maxPaybackMonths = 36.0

	// Categories scoring below this get a recommendation.
	recommendationThreshold = 0.6
)

// Per-category blend weights over declared readiness sub-scores and the
// derived infrastructure/cost proxies.
const (
	wTechCapability  = 0.5
	wInfraSimplicity = 0.3
	wInvestmentEase  = 0.2

	wResourceAvail = 0.5
	wPaybackSpeed  = 0.3
	wOpCostEase    = 0.2

	wChangeManagement = 0.6
	wLeadership       = 0.4
)

// Readiness category names used in recommendations.
const (
	technicalCategory = "technical"
	resourceCategory  = "resource"
	culturalCategory  = "cultural"
)

// ReadinessAssessor computes implementation readiness from a technology's
// declared infrastructure, cost and organizational attributes. It is
// stateless and safe for concurrent use.
type ReadinessAssessor struct{}

// NewReadinessAssessor creates an assessor.
func NewReadinessAssessor() *ReadinessAssessor {
	return &ReadinessAssessor{}
}

// Assess scores technical, resource and cultural readiness and emits
// recommendations for every category below the threshold, plus one
// evergreen monitoring recommendation.
func (a *ReadinessAssessor) Assess(tech *schema.Technology) schema.ImplementationReadiness {
	factors := tech.ImplementationFactors
	org := factors.OrganizationalReadiness
	costs := factors.CostFactors

	infraComplexity := InfrastructureComplexity(tech)
	paybackScore := agg.Clamp01(1 - costs.PaybackMonths/maxPaybackMonths)

	technical, _ := agg.Combine([]agg.Pair{
		{Score: org.TechnicalCapability, Weight: wTechCapability},
		{Score: 1 - infraComplexity, Weight: wInfraSimplicity},
		{Score: 1 - costs.InitialInvestment, Weight: wInvestmentEase},
	})
	resource, _ := agg.Combine([]agg.Pair{
		{Score: org.ResourceAvailability, Weight: wResourceAvail},
		{Score: paybackScore, Weight: wPaybackSpeed},
		{Score: 1 - costs.OperationalCost, Weight: wOpCostEase},
	})
	cultural, _ := agg.Combine([]agg.Pair{
		{Score: org.ChangeManagement, Weight: wChangeManagement},
		{Score: org.LeadershipSupport, Weight: wLeadership},
	})

	readiness := schema.ImplementationReadiness{
		TechnicalReadiness: technical,
		ResourceReadiness:  resource,
		CulturalReadiness:  cultural,
		OverallScore:       (technical + resource + cultural) / 3.0,
	}
	readiness.Recommendations = a.recommendations(technical, resource, cultural)

	return readiness
}

// InfrastructureComplexity maps the total number of declared requirement
// strings onto [0,1], saturating at maxInfraRequirements.
func InfrastructureComplexity(tech *schema.Technology) float64 {
	total := tech.ImplementationFactors.InfrastructureRequirements.Total()
	return agg.Saturate(float64(total), maxInfraRequirements)
}

// recommendations emits the fixed per-category actions for weak categories
// and always appends the monitoring recommendation.
func (a *ReadinessAssessor) recommendations(technical, resource, cultural float64) []schema.ReadinessRecommendation {
	recs := []schema.ReadinessRecommendation{}

	if technical < recommendationThreshold {
		recs = append(recs, schema.ReadinessRecommendation{
			Category: technicalCategory,
			Priority: schema.HighPriority,
			Action:   "Build internal technical capability through targeted hiring and training",
			Timeline: "3-6 months",
		})
	}
	if resource < recommendationThreshold {
		recs = append(recs, schema.ReadinessRecommendation{
			Category: resourceCategory,
			Priority: schema.HighPriority,
			Action:   "Secure budget and staffing commitments before starting implementation",
			Timeline: "1-3 months",
		})
	}
	if cultural < recommendationThreshold {
		recs = append(recs, schema.ReadinessRecommendation{
			Category: culturalCategory,
			Priority: schema.MediumPriority,
			Action:   "Run change-management workshops and secure visible leadership sponsorship",
			Timeline: "2-4 months",
		})
	}

	recs = append(recs, schema.ReadinessRecommendation{
		Category: "monitoring",
		Priority: schema.MediumPriority,
		Action:   "Review readiness quarterly as the technology and organization evolve",
		Timeline: "ongoing",
	})

	return recs
}

// Package schema has configs, models and shared constants for all parts of autoscope.
package schema

// SkillRequirement describes one skill a technology demands from its adopters.
type SkillRequirement struct {
	Name              string      `json:"name"`               // Skill name, used as the lookup key against current skills
	ProficiencyLevel  float64     `json:"proficiency_level"`  // Required proficiency (0-1)
	DemandTrend       DemandTrend `json:"demand_trend"`       // Market demand trajectory for this skill
	AvailabilityScore float64     `json:"availability_score"` // How available the skill is in the market (0-1)
	MonthsToAcquire   float64     `json:"months_to_acquire"`  // Typical months needed to reach the required proficiency
}

// JobsAffected counts the jobs a technology creates, modifies and displaces
// within one industry.
type JobsAffected struct {
	Created   int `json:"created"`
	Modified  int `json:"modified"`
	Displaced int `json:"displaced"`
}

// IndustryImpact describes how a technology lands in a single industry.
type IndustryImpact struct {
	Industry        string       `json:"industry"`         // Industry name, used as the lookup key
	DisruptionLevel float64      `json:"disruption_level"` // Expected disruption (0-1)
	AdoptionRate    float64      `json:"adoption_rate"`    // Current adoption within the industry (0-1)
	JobsAffected    JobsAffected `json:"jobs_affected"`    // Job creation/modification/displacement counts
	MonthsToImpact  float64      `json:"months_to_impact"` // Months until material impact
	Barriers        []string     `json:"barriers"`         // Adoption barriers specific to this industry
	Opportunities   []string     `json:"opportunities"`    // Opportunities specific to this industry
}

// DisruptionPotential holds five independent sub-scores (0-1) describing the
// ways a technology can reshape work.
type DisruptionPotential struct {
	ProcessAutomation     float64 `json:"process_automation"`
	DecisionAugmentation  float64 `json:"decision_augmentation"`
	SkillObsolescence     float64 `json:"skill_obsolescence"`
	NewCapabilityCreation float64 `json:"new_capability_creation"`
	MarketRestructuring   float64 `json:"market_restructuring"`
}

// CostFactors describes the financial profile of adopting a technology.
type CostFactors struct {
	InitialInvestment float64 `json:"initial_investment"` // Relative upfront cost (0-1, 1 is most expensive)
	OperationalCost   float64 `json:"operational_cost"`   // Relative ongoing cost (0-1)
	PaybackMonths     float64 `json:"payback_months"`     // Months until the investment pays back
}

// InfrastructureRequirements lists what must be in place before deployment.
type InfrastructureRequirements struct {
	Hardware     []string `json:"hardware"`
	Software     []string `json:"software"`
	Connectivity []string `json:"connectivity"`
	Security     []string `json:"security"`
}

// Total returns the number of requirement strings across all categories.
func (r InfrastructureRequirements) Total() int {
	return len(r.Hardware) + len(r.Software) + len(r.Connectivity) + len(r.Security)
}

// OrganizationalReadiness holds four declared readiness sub-scores (0-1).
type OrganizationalReadiness struct {
	TechnicalCapability  float64 `json:"technical_capability"`
	ChangeManagement     float64 `json:"change_management"`
	ResourceAvailability float64 `json:"resource_availability"`
	LeadershipSupport    float64 `json:"leadership_support"`
}

// Mean returns the unweighted average of the four sub-scores.
func (o OrganizationalReadiness) Mean() float64 {
	return (o.TechnicalCapability + o.ChangeManagement + o.ResourceAvailability + o.LeadershipSupport) / 4.0
}

// ImplementationRisks groups risk descriptions by category.
type ImplementationRisks struct {
	Technical      []string `json:"technical"`
	Financial      []string `json:"financial"`
	Organizational []string `json:"organizational"`
	Market         []string `json:"market"`
}

// ImplementationFactors bundles everything needed to judge how hard a
// technology is to put into production.
type ImplementationFactors struct {
	CostFactors                CostFactors                `json:"cost_factors"`
	InfrastructureRequirements InfrastructureRequirements `json:"infrastructure_requirements"`
	OrganizationalReadiness    OrganizationalReadiness    `json:"organizational_readiness"`
	Risks                      ImplementationRisks        `json:"risks"`
}

// MarketProjection is one declared year of market outlook for a technology.
type MarketProjection struct {
	Year         int      `json:"year"`
	MarketSize   float64  `json:"market_size"`   // Market size in USD millions
	GrowthRate   float64  `json:"growth_rate"`   // Annual growth rate in percent
	AdoptionRate float64  `json:"adoption_rate"` // Projected adoption (0-1)
	Confidence   float64  `json:"confidence"`    // Declared confidence in this projection (0-1)
	KeyDrivers   []string `json:"key_drivers"`
	Barriers     []string `json:"barriers"`
}

// Technology is the immutable input record describing an emerging technology.
// The engine never mutates it; every analysis derives fresh output records.
type Technology struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Category              string                `json:"category"`
	MaturityLevel         MaturityLevel         `json:"maturity_level"`
	ImpactScore           float64               `json:"impact_score"`       // Overall impact potential (0-1)
	TimeToMainstream      float64               `json:"time_to_mainstream"` // Months until mainstream adoption
	SkillRequirements     []SkillRequirement    `json:"skill_requirements"`
	IndustryImpacts       []IndustryImpact      `json:"industry_impacts"`
	DisruptionPotential   DisruptionPotential   `json:"disruption_potential"`
	ImplementationFactors ImplementationFactors `json:"implementation_factors"`
	MarketProjections     []MarketProjection    `json:"market_projections"`
	RelatedTechnologies   []string              `json:"related_technologies"`
}

// IndustryImpactFor returns the impact entry for the named industry, or nil
// if the technology declares no impact for it.
func (t *Technology) IndustryImpactFor(industry string) *IndustryImpact {
	for i := range t.IndustryImpacts {
		if t.IndustryImpacts[i].Industry == industry {
			return &t.IndustryImpacts[i]
		}
	}
	return nil
}

// LatestMarketProjection returns the projection with the highest year, or nil
// if no projections are declared.
func (t *Technology) LatestMarketProjection() *MarketProjection {
	var latest *MarketProjection
	for i := range t.MarketProjections {
		if latest == nil || t.MarketProjections[i].Year > latest.Year {
			latest = &t.MarketProjections[i]
		}
	}
	return latest
}

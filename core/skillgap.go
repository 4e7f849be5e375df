package core

import (
	"strings"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Skill-gap scoring constants.
const (
	increasingDemandMultiplier = 1.2 // increasing-demand skills weigh heavier in the gap
	highPriorityThreshold      = 0.7
	mediumPriorityThreshold    = 0.4
	mentoringLevelThreshold    = 0.7 // deep skills warrant mentoring and workshops
)

// SkillGapAnalyzer compares a technology's required skills against a set of
// current skills. It is stateless and safe for concurrent use.
type SkillGapAnalyzer struct{}

// NewSkillGapAnalyzer creates an analyzer.
func NewSkillGapAnalyzer() *SkillGapAnalyzer {
	return &SkillGapAnalyzer{}
}

// Analyze produces the gap severity, prioritized training needs and overall
// skill market availability for a technology. currentSkills is matched by
// name, case-insensitively; a superset of the required names yields a zero
// gap and no training needs.
func (a *SkillGapAnalyzer) Analyze(tech *schema.Technology, currentSkills []string) schema.SkillGapAnalysis {
	held := make(map[string]struct{}, len(currentSkills))
	for _, s := range currentSkills {
		held[strings.ToLower(s)] = struct{}{}
	}

	var missing []schema.SkillRequirement
	var availSum float64
	for _, req := range tech.SkillRequirements {
		availSum += req.AvailabilityScore
		if _, ok := held[strings.ToLower(req.Name)]; !ok {
			missing = append(missing, req)
		}
	}

	analysis := schema.SkillGapAnalysis{
		TrainingNeeds:      []schema.TrainingNeed{},
		MarketAvailability: agg.SafeRatio(availSum, float64(len(tech.SkillRequirements))),
	}

	if len(missing) == 0 {
		return analysis
	}

	var severitySum float64
	for _, req := range missing {
		severitySum += req.ProficiencyLevel * demandMultiplier(req.DemandTrend)
		analysis.TrainingNeeds = append(analysis.TrainingNeeds, trainingNeed(req))
	}
	analysis.GapSeverity = agg.Clamp01(severitySum / float64(len(missing)))

	return analysis
}

// demandMultiplier weighs skills whose demand is rising.
func demandMultiplier(trend schema.DemandTrend) float64 {
	if trend == schema.DemandIncreasing {
		return increasingDemandMultiplier
	}
	return 1.0
}

// trainingNeed builds the prioritized training entry for one missing skill.
// Priority reflects how deep, sought-after and scarce the skill is.
func trainingNeed(req schema.SkillRequirement) schema.TrainingNeed {
	score := req.ProficiencyLevel * demandMultiplier(req.DemandTrend) * (1 - req.AvailabilityScore)

	var priority schema.Priority
	switch {
	case score > highPriorityThreshold:
		priority = schema.HighPriority
	case score > mediumPriorityThreshold:
		priority = schema.MediumPriority
	default:
		priority = schema.LowPriority
	}

	resources := []string{"Online courses", "Documentation"}
	if req.ProficiencyLevel > mentoringLevelThreshold {
		resources = append(resources, "Mentoring", "Workshops")
	}
	if req.DemandTrend == schema.DemandIncreasing {
		resources = append(resources, "Certifications", "Professional training")
	}

	return schema.TrainingNeed{
		Skill:           req.Name,
		Priority:        priority,
		MonthsToAcquire: req.MonthsToAcquire,
		Resources:       resources,
	}
}

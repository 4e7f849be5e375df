package core

import (
	"fmt"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Job-impact weight constants. Tuned against historical observations; do
// not derive at runtime.
const (
	wProcessAutomation = 0.4
	wSkillObsolescence = 0.3
	wDisplacementRatio = 0.3

	wDecisionAugmentation = 0.4
	wNewCapability        = 0.3
	wModificationRatio    = 0.3

	wTimeToAcquire = 0.6
	wAvailability  = 0.4

	// Months of skill acquisition beyond this saturate transferability to 0.
	maxAcquireMonths = 24.0

	// Strategy templates fire above this threshold.
	strategyThreshold = 0.7
)

// Mitigation strategy templates, appended whenever the corresponding score
// crosses strategyThreshold.
var (
	automationMitigations = []string{
		"Reskill affected workers toward oversight and exception handling",
		"Phase automation in alongside redeployment programs",
		"Audit automated decisions for quality and bias before scaling",
	}
	augmentationMitigations = []string{
		"Pair domain experts with the technology to capture productivity gains",
		"Redesign roles around judgment tasks the technology cannot perform",
		"Invest in tool fluency training for augmented roles",
	}
)

// RiskPotentialCalculator scores automation risk and augmentation potential
// for a (technology, industry impact) pair. It is stateless and safe for
// concurrent use.
type RiskPotentialCalculator struct{}

// NewRiskPotentialCalculator creates a calculator.
func NewRiskPotentialCalculator() *RiskPotentialCalculator {
	return &RiskPotentialCalculator{}
}

// Analyze computes the job impact of a technology within one industry.
// Fails with ErrMissingIndustryData when the industry is absent from the
// technology's impact list.
func (c *RiskPotentialCalculator) Analyze(tech *schema.Technology, industry string) (schema.JobImpactAnalysis, error) {
	if tech == nil {
		return schema.JobImpactAnalysis{}, fmt.Errorf("%w: nil technology", ErrInvalidInput)
	}
	impact := tech.IndustryImpactFor(industry)
	if impact == nil {
		return schema.JobImpactAnalysis{}, fmt.Errorf("%w: %q", ErrMissingIndustryData, industry)
	}
	return c.analyzeImpact(tech, impact), nil
}

func (c *RiskPotentialCalculator) analyzeImpact(tech *schema.Technology, impact *schema.IndustryImpact) schema.JobImpactAnalysis {
	dp := tech.DisruptionPotential
	jobs := impact.JobsAffected

	created := float64(jobs.Created)
	modified := float64(jobs.Modified)
	displaced := float64(jobs.Displaced)

	automationRisk := agg.Clamp01(
		wProcessAutomation*dp.ProcessAutomation +
			wSkillObsolescence*dp.SkillObsolescence +
			wDisplacementRatio*agg.SafeRatio(displaced, created+modified))

	augmentationPotential := agg.Clamp01(
		wDecisionAugmentation*dp.DecisionAugmentation +
			wNewCapability*dp.NewCapabilityCreation +
			wModificationRatio*agg.SafeRatio(modified, created+displaced))

	newRoleCreation := agg.Clamp01(
		agg.SafeRatio(created, modified+displaced) * dp.NewCapabilityCreation)

	analysis := schema.JobImpactAnalysis{
		AutomationRisk:        automationRisk,
		AugmentationPotential: augmentationPotential,
		NewRoleCreation:       newRoleCreation,
		SkillTransferability:  c.skillTransferability(tech.SkillRequirements),
		MitigationStrategies:  []string{},
	}

	if automationRisk > strategyThreshold {
		analysis.MitigationStrategies = append(analysis.MitigationStrategies, automationMitigations...)
	}
	if augmentationPotential > strategyThreshold {
		analysis.MitigationStrategies = append(analysis.MitigationStrategies, augmentationMitigations...)
	}

	return analysis
}

// skillTransferability rewards skills that are quick to acquire and widely
// available. An empty requirement list scores 0 on both terms.
func (c *RiskPotentialCalculator) skillTransferability(skills []schema.SkillRequirement) float64 {
	if len(skills) == 0 {
		return 0
	}
	var acquireSum, availSum float64
	for _, s := range skills {
		acquireSum += s.MonthsToAcquire
		availSum += s.AvailabilityScore
	}
	n := float64(len(skills))
	avgAcquire := acquireSum / n
	avgAvail := availSum / n

	return agg.Clamp01(
		wTimeToAcquire*agg.Clamp01(1-avgAcquire/maxAcquireMonths) +
			wAvailability*avgAvail)
}

package core

import (
	"sort"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Phase template names, in declared order.
const (
	phasePlanning   = "Planning"
	phaseInfra      = "Infrastructure Setup"
	phaseTraining   = "Training"
	phasePilot      = "Pilot"
	phaseDeployment = "Full Deployment"
)

// Phase scheduling constants, in months.
const (
	planningDuration  = 2.0
	parallelStart     = 2.0 // Infrastructure and Training run in parallel from here
	infraBaseDuration = 2.0
	infraScale        = 6.0 // additional months at full infrastructure complexity
	pilotDuration     = 3.0
	deployBase        = 2.0
	deployScale       = 2.0
	minTrainingMonths = 1.0

	// Each phase can carry up to this many risks before the risk-density
	// term bottoms out.
	maxRisksPerPhase = 5.0
)

// TimelineProjector builds the dependent-phase rollout plan for a
// technology. It is stateless and safe for concurrent use.
type TimelineProjector struct{}

// NewTimelineProjector creates a projector.
func NewTimelineProjector() *TimelineProjector {
	return &TimelineProjector{}
}

// Project builds the five-phase implementation timeline. Infrastructure
// Setup and Training run in parallel from month 2; Pilot begins when the
// later of the two completes. The critical path orders phases by completion
// month, and total duration is the final completion month.
func (p *TimelineProjector) Project(tech *schema.Technology) schema.TimelineProjection {
	infraComplexity := InfrastructureComplexity(tech)
	risks := tech.ImplementationFactors.Risks

	infraDuration := infraBaseDuration + infraScale*infraComplexity
	trainingDuration := avgAcquisitionMonths(tech.SkillRequirements)
	if trainingDuration < minTrainingMonths {
		trainingDuration = minTrainingMonths
	}

	infraEnd := parallelStart + infraDuration
	trainingEnd := parallelStart + trainingDuration
	pilotStart := infraEnd
	if trainingEnd > pilotStart {
		pilotStart = trainingEnd
	}

	phases := []schema.ImplementationPhase{
		{
			Name:         phasePlanning,
			StartMonth:   0,
			Duration:     planningDuration,
			Dependencies: []string{},
			Risks:        risks.Financial,
		},
		{
			Name:         phaseInfra,
			StartMonth:   parallelStart,
			Duration:     infraDuration,
			Dependencies: []string{phasePlanning},
			Risks:        risks.Technical,
		},
		{
			Name:         phaseTraining,
			StartMonth:   parallelStart,
			Duration:     trainingDuration,
			Dependencies: []string{phasePlanning},
			Risks:        risks.Organizational,
		},
		{
			Name:         phasePilot,
			StartMonth:   pilotStart,
			Duration:     pilotDuration,
			Dependencies: []string{phaseInfra, phaseTraining},
			Risks:        risks.Technical,
		},
		{
			Name:         phaseDeployment,
			StartMonth:   pilotStart + pilotDuration,
			Duration:     deployBase + deployScale*infraComplexity,
			Dependencies: []string{phasePilot},
			Risks:        risks.Market,
		},
	}

	criticalPath := criticalPathOrder(phases)
	total := phases[0].End()
	for _, ph := range phases {
		if ph.End() > total {
			total = ph.End()
		}
	}

	return schema.TimelineProjection{
		Phases:          phases,
		CriticalPath:    criticalPath,
		TotalMonths:     total,
		ConfidenceLevel: p.confidence(tech, phases, infraComplexity),
	}
}

// criticalPathOrder sorts phase names by completion month ascending. The
// sort is stable so same-month phases keep their declared order.
func criticalPathOrder(phases []schema.ImplementationPhase) []string {
	ordered := make([]schema.ImplementationPhase, len(phases))
	copy(ordered, phases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].End() < ordered[j].End()
	})

	names := make([]string, len(ordered))
	for i, ph := range ordered {
		names[i] = ph.Name
	}
	return names
}

// confidence averages infrastructure simplicity, technical capability,
// change-management readiness and inverse risk density across phases.
func (p *TimelineProjector) confidence(tech *schema.Technology, phases []schema.ImplementationPhase, infraComplexity float64) float64 {
	org := tech.ImplementationFactors.OrganizationalReadiness

	totalRisks := 0
	for _, ph := range phases {
		totalRisks += len(ph.Risks)
	}
	riskDensity := agg.Clamp01(float64(totalRisks) / (float64(len(phases)) * maxRisksPerPhase))

	return agg.Mean([]float64{
		1 - infraComplexity,
		org.TechnicalCapability,
		org.ChangeManagement,
		1 - riskDensity,
	})
}

// avgAcquisitionMonths is the mean months-to-acquire across required
// skills, or 0 when no skills are declared.
func avgAcquisitionMonths(skills []schema.SkillRequirement) float64 {
	if len(skills) == 0 {
		return 0
	}
	var sum float64
	for _, s := range skills {
		sum += s.MonthsToAcquire
	}
	return sum / float64(len(skills))
}

package core

import (
	"fmt"

	"github.com/apolabs/autoscope/schema"
)

// Engine bundles the four independent analyzers behind one entry point.
// Instances are explicitly constructed and injected by callers; the engine
// holds no global state and performs no caching of its own.
type Engine struct {
	risk      *RiskPotentialCalculator
	skillGaps *SkillGapAnalyzer
	readiness *ReadinessAssessor
	timeline  *TimelineProjector
}

// NewEngine creates an engine with all four analyzers.
func NewEngine() *Engine {
	return &Engine{
		risk:      NewRiskPotentialCalculator(),
		skillGaps: NewSkillGapAnalyzer(),
		readiness: NewReadinessAssessor(),
		timeline:  NewTimelineProjector(),
	}
}

// AnalyzeEmergingTechnology runs job-impact, skill-gap, readiness and
// timeline analysis for one (technology, skills, industry) triple. The
// result is recomputed on every call.
//
// Fails with ErrMissingIndustryData when industryContext is not among the
// technology's industry impacts, and with ErrInvalidInput when the
// technology is nil or declares no skill requirements (the gap and
// transferability metrics need at least one).
func (e *Engine) AnalyzeEmergingTechnology(tech *schema.Technology, currentSkills []string, industryContext string) (*schema.EmergingTechAnalysis, error) {
	if tech == nil {
		return nil, fmt.Errorf("%w: nil technology", ErrInvalidInput)
	}
	if len(tech.SkillRequirements) == 0 {
		return nil, fmt.Errorf("%w: technology %q has no skill requirements", ErrInvalidInput, tech.Name)
	}

	jobImpact, err := e.risk.Analyze(tech, industryContext)
	if err != nil {
		return nil, err
	}

	return &schema.EmergingTechAnalysis{
		TechnologyID: tech.ID,
		Technology:   tech.Name,
		Industry:     industryContext,
		JobImpact:    jobImpact,
		SkillGaps:    e.skillGaps.Analyze(tech, currentSkills),
		Readiness:    e.readiness.Assess(tech),
		Timeline:     e.timeline.Project(tech),
	}, nil
}

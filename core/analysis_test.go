package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAnalyzeEmergingTechnology exercises the full analysis bundle.
func TestAnalyzeEmergingTechnology(t *testing.T) {
	engine := NewEngine()

	analysis, err := engine.AnalyzeEmergingTechnology(benchmarkTechnology(), []string{"Data Engineering"}, "Healthcare")
	assert.NoError(t, err)

	assert.Equal(t, "tech-001", analysis.TechnologyID)
	assert.Equal(t, "Healthcare", analysis.Industry)
	assert.InDelta(t, 0.70, analysis.JobImpact.AutomationRisk, 0.05)
	assert.Len(t, analysis.SkillGaps.TrainingNeeds, 1) // only Machine Learning is missing
	assert.Len(t, analysis.Timeline.Phases, 5)
	assert.NotEmpty(t, analysis.Readiness.Recommendations)
}

// TestAnalyzeEmergingTechnologyErrors covers the fail-fast boundary.
func TestAnalyzeEmergingTechnologyErrors(t *testing.T) {
	engine := NewEngine()

	t.Run("nil technology", func(t *testing.T) {
		_, err := engine.AnalyzeEmergingTechnology(nil, nil, "Healthcare")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing industry", func(t *testing.T) {
		_, err := engine.AnalyzeEmergingTechnology(benchmarkTechnology(), nil, "Retail")
		assert.ErrorIs(t, err, ErrMissingIndustryData)
	})

	t.Run("no skill requirements", func(t *testing.T) {
		tech := benchmarkTechnology()
		tech.SkillRequirements = nil
		_, err := engine.AnalyzeEmergingTechnology(tech, nil, "Healthcare")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// TestAnalyzeDoesNotMutateInput ensures the technology record is treated
// as immutable.
func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	engine := NewEngine()

	tech := benchmarkTechnology()
	want := *benchmarkTechnology()

	_, err := engine.AnalyzeEmergingTechnology(tech, []string{"Scripting"}, "Healthcare")
	assert.NoError(t, err)
	assert.Equal(t, want.DisruptionPotential, tech.DisruptionPotential)
	assert.Equal(t, want.SkillRequirements, tech.SkillRequirements)
	assert.Equal(t, want.IndustryImpacts, tech.IndustryImpacts)
}

// TestAnalyzeRecomputes ensures two calls return equal but independent
// results.
func TestAnalyzeRecomputes(t *testing.T) {
	engine := NewEngine()
	tech := benchmarkTechnology()

	first, err := engine.AnalyzeEmergingTechnology(tech, nil, "Healthcare")
	assert.NoError(t, err)
	second, err := engine.AnalyzeEmergingTechnology(tech, nil, "Healthcare")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

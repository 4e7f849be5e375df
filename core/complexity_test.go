package core

import (
	"testing"
	"time"

	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
)

func fixedComplexityScorer() *ComplexityScorer {
	scorer := NewComplexityScorer(schema.DefaultVocabulary())
	scorer.now = func() time.Time {
		return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return scorer
}

// TestTaskComplexity checks the keyword-density blend against hand-computed
// values. Four of fifteen indicators match, so density is 4 / (15/3) = 0.8.
func TestTaskComplexity(t *testing.T) {
	scorer := fixedComplexityScorer()

	task := schema.OccupationTask{
		Description:    "Analyze data, design pipelines and optimize queries to integrate systems.",
		Tools:          []string{"SQL client", "Profiler", "Scheduler", "Notebook", "Tracer"},
		WorkActivities: []string{"modeling", "tuning", "reporting"},
	}

	// 0.4*0.8 + 0.3*(5/10) + 0.3*(3/15)
	assert.InDelta(t, 0.53, scorer.TaskComplexity(task), 0.0001)

	t.Run("empty description scores only counts", func(t *testing.T) {
		task.Description = ""
		assert.InDelta(t, 0.21, scorer.TaskComplexity(task), 0.0001)
	})
}

// TestSkillRequirements checks the proficiency blend and the empty-list zero.
func TestSkillRequirements(t *testing.T) {
	scorer := fixedComplexityScorer()

	skills := []schema.OccupationSkill{
		{Name: "SQL", Level: 4, Category: "technical"},
		{Name: "Stakeholder management", Level: 2, Category: "social"},
	}

	// avg level 3/5 = 0.6, 2 categories of 8, 2 skills of 20.
	assert.InDelta(t, 0.345, scorer.SkillRequirements(skills), 0.0001)

	assert.Zero(t, scorer.SkillRequirements(nil))
}

func TestTechnologicalSophistication(t *testing.T) {
	scorer := fixedComplexityScorer()

	t.Run("recency decays with average age", func(t *testing.T) {
		techs := []schema.OccupationTechnology{
			{Name: "Vector DB", Category: "storage", ReleaseYear: 2024},
			{Name: "Orchestrator", Category: "infra", ReleaseYear: 2022},
		}
		// 2 techs of 10, 2 categories of 6, ages (2, 4) so recency 0.7.
		assert.InDelta(t, 0.39, scorer.TechnologicalSophistication(techs), 0.0001)
	})

	t.Run("future release years clamp to age zero", func(t *testing.T) {
		techs := []schema.OccupationTechnology{
			{Name: "Preview SDK", Category: "infra", ReleaseYear: 2030},
		}
		// 1 tech of 10, 1 category of 6, recency 1.0.
		assert.InDelta(t, 0.4*0.1+0.3/6.0+0.3, scorer.TechnologicalSophistication(techs), 0.0001)
	})

	t.Run("old technology bottoms out recency", func(t *testing.T) {
		techs := []schema.OccupationTechnology{
			{Name: "Mainframe suite", Category: "legacy", ReleaseYear: 2000},
		}
		assert.InDelta(t, 0.4*0.1+0.3/6.0, scorer.TechnologicalSophistication(techs), 0.0001)
	})

	assert.Zero(t, scorer.TechnologicalSophistication(nil))
}

// TestDecisionMakingAutonomy checks the per-line keyword fractions. Each line
// counts at most once per keyword list even when several keywords match.
func TestDecisionMakingAutonomy(t *testing.T) {
	scorer := fixedComplexityScorer()

	responsibilities := []string{
		"Decide on vendor contracts",
		"Prioritize the release backlog",
		"Track strategic budget outcomes",
		"Work independently on triage",
	}

	// decision 2/4, impact 1/4, independence 1/4.
	assert.InDelta(t, 0.35, scorer.DecisionMakingAutonomy(responsibilities), 0.0001)

	assert.Zero(t, scorer.DecisionMakingAutonomy(nil))
}

// TestCalculateComplexity checks the bundle matches the individual factors.
func TestCalculateComplexity(t *testing.T) {
	scorer := fixedComplexityScorer()

	task := schema.OccupationTask{Description: "Coordinate and evaluate audits"}
	skills := []schema.OccupationSkill{{Name: "Auditing", Level: 5, Category: "domain"}}
	techs := []schema.OccupationTechnology{{Name: "Ledger", Category: "finance", ReleaseYear: 2025}}
	responsibilities := []string{"Approve filings"}

	factors := scorer.CalculateComplexity(task, skills, techs, responsibilities)

	assert.Equal(t, scorer.TaskComplexity(task), factors.TaskComplexity)
	assert.Equal(t, scorer.SkillRequirements(skills), factors.SkillRequirements)
	assert.Equal(t, scorer.TechnologicalSophistication(techs), factors.TechnologicalSophistication)
	assert.Equal(t, scorer.DecisionMakingAutonomy(responsibilities), factors.DecisionMakingAutonomy)
}

// TestEmptyVocabulary ensures missing keyword lists zero the keyword signals
// instead of erroring.
func TestEmptyVocabulary(t *testing.T) {
	scorer := NewComplexityScorer(schema.Vocabulary{Version: "test"})

	task := schema.OccupationTask{
		Description: "Analyze and design everything",
		Tools:       []string{"a", "b"},
	}
	// Only the tool count contributes: 0.3 * 2/10.
	assert.InDelta(t, 0.06, scorer.TaskComplexity(task), 0.0001)

	assert.Zero(t, scorer.DecisionMakingAutonomy([]string{"Decide things"}))
}

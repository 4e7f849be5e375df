package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTechnology(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		path := writeTempFile(t, "tech.json", `{
			"id": "tech-042",
			"name": "Document AI",
			"category": "AI/ML",
			"maturity_level": "Emerging",
			"impact_score": 0.7,
			"skill_requirements": [
				{"name": "Python", "proficiency_level": 0.6, "demand_trend": "increasing"}
			],
			"industry_impacts": [
				{"industry": "Insurance", "disruption_level": 0.5, "adoption_rate": 0.3}
			]
		}`)

		tech, err := LoadTechnology(path)
		require.NoError(t, err)
		assert.Equal(t, "tech-042", tech.ID)
		assert.Equal(t, schema.Emerging, tech.MaturityLevel)
		assert.Len(t, tech.SkillRequirements, 1)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempFile(t, "tech.json", `{"id": `)
		_, err := LoadTechnology(path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTechnology("/nonexistent/tech.json")
		assert.ErrorContains(t, err, "failed to read")
	})
}

func TestValidateTechnology(t *testing.T) {
	valid := func() *schema.Technology {
		return &schema.Technology{
			ID:            "tech-001",
			Name:          "Robotic Process Automation",
			MaturityLevel: schema.Growth,
			ImpactScore:   0.6,
		}
	}

	tests := []struct {
		name   string
		mutate func(*schema.Technology)
		errMsg string
	}{
		{"missing id", func(tech *schema.Technology) { tech.ID = "" }, "id is required"},
		{"missing name", func(tech *schema.Technology) { tech.Name = "" }, "name is required"},
		{"bad maturity", func(tech *schema.Technology) { tech.MaturityLevel = "ancient" }, "maturity level"},
		{"impact out of range", func(tech *schema.Technology) { tech.ImpactScore = 1.5 }, "impact score"},
		{"unnamed skill", func(tech *schema.Technology) {
			tech.SkillRequirements = []schema.SkillRequirement{{ProficiencyLevel: 0.5}}
		}, "has no name"},
		{"skill proficiency out of range", func(tech *schema.Technology) {
			tech.SkillRequirements = []schema.SkillRequirement{{Name: "SQL", ProficiencyLevel: 2}}
		}, "proficiency"},
		{"unnamed industry", func(tech *schema.Technology) {
			tech.IndustryImpacts = []schema.IndustryImpact{{DisruptionLevel: 0.5}}
		}, "industry name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := valid()
			tt.mutate(tech)
			assert.ErrorContains(t, ValidateTechnology(tech), tt.errMsg)
		})
	}

	assert.NoError(t, ValidateTechnology(valid()))
}

func TestLoadSkills(t *testing.T) {
	path := writeTempFile(t, "skills.json", `["Python", "  SQL ", "python", "", "Data Modeling"]`)

	skills, err := LoadSkills(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Modeling", "Python", "SQL"}, skills)
}

func TestLoadHistory(t *testing.T) {
	t.Run("valid series", func(t *testing.T) {
		path := writeTempFile(t, "history.json", `[
			{"timestamp": "2025-01-01T00:00:00Z", "automation_score": 0.4},
			{"timestamp": "2025-02-01T00:00:00Z", "automation_score": 0.5}
		]`)

		points, err := LoadHistory(path)
		require.NoError(t, err)
		assert.Len(t, points, 2)
	})

	t.Run("missing timestamp", func(t *testing.T) {
		path := writeTempFile(t, "history.json", `[{"automation_score": 0.4}]`)
		_, err := LoadHistory(path)
		assert.ErrorContains(t, err, "no timestamp")
	})

	t.Run("score out of range", func(t *testing.T) {
		path := writeTempFile(t, "history.json", `[{"timestamp": "2025-01-01T00:00:00Z", "automation_score": 1.4}]`)
		_, err := LoadHistory(path)
		assert.ErrorContains(t, err, "automation score")
	})
}

func TestLoadVocabulary(t *testing.T) {
	t.Run("empty path falls back to default", func(t *testing.T) {
		vocab, err := LoadVocabulary("")
		require.NoError(t, err)
		assert.Equal(t, schema.DefaultVocabulary(), vocab)
	})

	t.Run("custom file", func(t *testing.T) {
		path := writeTempFile(t, "vocab.json", `{
			"version": "custom",
			"complexity_indicators": ["analyze", "synthesize"]
		}`)

		vocab, err := LoadVocabulary(path)
		require.NoError(t, err)
		assert.Equal(t, "custom", vocab.Version)
		assert.Len(t, vocab.ComplexityIndicators, 2)
	})

	t.Run("empty keyword lists rejected", func(t *testing.T) {
		path := writeTempFile(t, "vocab.json", `{"version": "empty"}`)
		_, err := LoadVocabulary(path)
		assert.ErrorContains(t, err, "no keyword lists")
	})
}

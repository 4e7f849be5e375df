package core

import (
	"strings"
	"time"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Saturating maxima for occupation-complexity sub-signals. Counts at or
// beyond these score 1.0.
const (
	maxTools          = 10.0 // distinct tools beyond this saturate
	maxWorkActivities = 15.0 // work activities beyond this saturate
	maxSkills         = 20.0 // skill count beyond this saturate
	maxSkillCats      = 8.0  // distinct skill categories beyond this saturate
	maxTechnologies   = 10.0 // technology count beyond this saturate
	maxTechCats       = 6.0  // distinct technology categories beyond this saturate
	maxSkillLevel     = 5.0  // proficiency scale ceiling
	maxTechAgeYears   = 10.0 // technologies older than this score 0 recency
)

// Sub-signal weights shared by all four complexity factors: primary signal,
// then two secondary signals.
const (
	wPrimary   = 0.4
	wSecondary = 0.3
)

// ComplexityScorer turns raw occupation records into normalized complexity
// factors. The keyword vocabularies are injected data so they can be tuned
// without touching the aggregation logic.
type ComplexityScorer struct {
	vocab schema.Vocabulary
	now   func() time.Time
}

// NewComplexityScorer creates a scorer using the given vocabulary.
func NewComplexityScorer(vocab schema.Vocabulary) *ComplexityScorer {
	return &ComplexityScorer{vocab: vocab, now: time.Now}
}

// CalculateComplexity computes all four complexity factors for an
// occupation. The factors are independent; callers choose how to combine
// them.
func (s *ComplexityScorer) CalculateComplexity(
	task schema.OccupationTask,
	skills []schema.OccupationSkill,
	technologies []schema.OccupationTechnology,
	responsibilities []string,
) schema.ComplexityFactors {
	return schema.ComplexityFactors{
		TaskComplexity:              s.TaskComplexity(task),
		SkillRequirements:           s.SkillRequirements(skills),
		TechnologicalSophistication: s.TechnologicalSophistication(technologies),
		DecisionMakingAutonomy:      s.DecisionMakingAutonomy(responsibilities),
	}
}

// TaskComplexity blends keyword density of the task description against the
// complexity-indicator vocabulary with saturating tool and work-activity
// counts.
func (s *ComplexityScorer) TaskComplexity(task schema.OccupationTask) float64 {
	score, _ := agg.Combine([]agg.Pair{
		{Score: keywordDensity(task.Description, s.vocab.ComplexityIndicators), Weight: wPrimary},
		{Score: agg.Saturate(float64(len(task.Tools)), maxTools), Weight: wSecondary},
		{Score: agg.Saturate(float64(len(task.WorkActivities)), maxWorkActivities), Weight: wSecondary},
	})
	return score
}

// SkillRequirements blends average proficiency level with saturating
// category and skill counts. An empty skill list scores 0 on every
// sub-signal.
func (s *ComplexityScorer) SkillRequirements(skills []schema.OccupationSkill) float64 {
	var avgLevel float64
	categories := make(map[string]struct{})
	if len(skills) > 0 {
		var sum float64
		for _, sk := range skills {
			sum += sk.Level
			categories[sk.Category] = struct{}{}
		}
		avgLevel = sum / float64(len(skills))
	}

	score, _ := agg.Combine([]agg.Pair{
		{Score: agg.Clamp01(avgLevel / maxSkillLevel), Weight: wPrimary},
		{Score: agg.Saturate(float64(len(categories)), maxSkillCats), Weight: wSecondary},
		{Score: agg.Saturate(float64(len(skills)), maxSkills), Weight: wSecondary},
	})
	return score
}

// TechnologicalSophistication blends technology count, category diversity
// and recency. Recency decays linearly with the average technology age and
// bottoms out at 0 after maxTechAgeYears.
func (s *ComplexityScorer) TechnologicalSophistication(technologies []schema.OccupationTechnology) float64 {
	categories := make(map[string]struct{})
	var recency float64
	if len(technologies) > 0 {
		currentYear := s.now().Year()
		var ageSum float64
		for _, tech := range technologies {
			categories[tech.Category] = struct{}{}
			age := float64(currentYear - tech.ReleaseYear)
			if age < 0 {
				age = 0
			}
			ageSum += age
		}
		avgAge := ageSum / float64(len(technologies))
		recency = agg.Clamp01(1 - avgAge/maxTechAgeYears)
	}

	score, _ := agg.Combine([]agg.Pair{
		{Score: agg.Saturate(float64(len(technologies)), maxTechnologies), Weight: wPrimary},
		{Score: agg.Saturate(float64(len(categories)), maxTechCats), Weight: wSecondary},
		{Score: recency, Weight: wSecondary},
	})
	return score
}

// DecisionMakingAutonomy blends the fractions of responsibility strings that
// mention decision, impact and independence keywords. An empty
// responsibility list scores 0 rather than dividing by zero.
func (s *ComplexityScorer) DecisionMakingAutonomy(responsibilities []string) float64 {
	score, _ := agg.Combine([]agg.Pair{
		{Score: keywordFraction(responsibilities, s.vocab.DecisionKeywords), Weight: wPrimary},
		{Score: keywordFraction(responsibilities, s.vocab.ImpactKeywords), Weight: wSecondary},
		{Score: keywordFraction(responsibilities, s.vocab.IndependenceKeywords), Weight: wSecondary},
	})
	return score
}

// keywordDensity scores how many vocabulary keywords appear in the text,
// saturating once a third of the vocabulary matches.
func keywordDensity(text string, keywords []string) float64 {
	if text == "" || len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	saturation := float64(len(keywords)) / 3.0
	return agg.Saturate(float64(matches), saturation)
}

// keywordFraction returns the fraction of lines containing at least one of
// the given keywords, or 0 for an empty line list.
func keywordFraction(lines []string, keywords []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	matched := 0
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(lines))
}

package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/apolabs/autoscope/schema"
)

// LoadTechnology reads and validates a technology record from a JSON file.
func LoadTechnology(path string) (*schema.Technology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read technology file %q: %w", path, err)
	}

	var tech schema.Technology
	if err := json.Unmarshal(data, &tech); err != nil {
		return nil, fmt.Errorf("failed to parse technology file %q: %w", path, err)
	}

	if err := ValidateTechnology(&tech); err != nil {
		return nil, fmt.Errorf("invalid technology record in %q: %w", path, err)
	}
	return &tech, nil
}

// ValidateTechnology rejects records that would poison downstream scoring.
// Validation is fail-fast so a bad record never reaches the engine.
func ValidateTechnology(tech *schema.Technology) error {
	if tech.ID == "" {
		return fmt.Errorf("id is required")
	}
	if tech.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, ok := schema.ValidMaturityLevels[tech.MaturityLevel]; !ok {
		return fmt.Errorf("invalid maturity level %q", tech.MaturityLevel)
	}
	if tech.ImpactScore < 0 || tech.ImpactScore > 1 {
		return fmt.Errorf("impact score must be between 0.0 and 1.0 (received %.2f)", tech.ImpactScore)
	}
	for i, skill := range tech.SkillRequirements {
		if skill.Name == "" {
			return fmt.Errorf("skill requirement %d has no name", i)
		}
		if skill.ProficiencyLevel < 0 || skill.ProficiencyLevel > 1 {
			return fmt.Errorf("skill %q proficiency must be between 0.0 and 1.0", skill.Name)
		}
	}
	for i, impact := range tech.IndustryImpacts {
		if impact.Industry == "" {
			return fmt.Errorf("industry impact %d has no industry name", i)
		}
	}
	return nil
}

// LoadSkills reads a flat list of skill names from a JSON file.
// Duplicates are removed case-insensitively and ordering is normalized.
func LoadSkills(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file %q: %w", path, err)
	}

	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills file %q: %w", path, err)
	}

	seen := make(map[string]struct{})
	result := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, s)
	}
	sort.Strings(result)
	return result, nil
}

// LoadHistory reads a historical observation series from a JSON file.
func LoadHistory(path string) ([]schema.HistoricalDataPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file %q: %w", path, err)
	}

	var points []schema.HistoricalDataPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse history file %q: %w", path, err)
	}

	for i, p := range points {
		if p.Timestamp.IsZero() {
			return nil, fmt.Errorf("history point %d has no timestamp", i)
		}
		if p.AutomationScore < 0 || p.AutomationScore > 1 {
			return nil, fmt.Errorf("history point %d automation score must be between 0.0 and 1.0", i)
		}
	}
	return points, nil
}

// LoadOccupation reads an occupation profile for complexity scoring from a
// JSON file.
func LoadOccupation(path string) (*schema.OccupationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read occupation file %q: %w", path, err)
	}

	var profile schema.OccupationProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse occupation file %q: %w", path, err)
	}

	if profile.Name == "" {
		return nil, fmt.Errorf("occupation name is required in %q", path)
	}
	for i, skill := range profile.Skills {
		if skill.Name == "" {
			return nil, fmt.Errorf("occupation skill %d has no name", i)
		}
		if skill.Level < 0 || skill.Level > 5 {
			return nil, fmt.Errorf("occupation skill %q level must be between 0 and 5", skill.Name)
		}
	}
	for i, tech := range profile.Technologies {
		if tech.Name == "" {
			return nil, fmt.Errorf("occupation technology %d has no name", i)
		}
	}
	return &profile, nil
}

// LoadVocabulary reads a keyword vocabulary from a JSON file, falling back
// to the built-in vocabulary when no path is given.
func LoadVocabulary(path string) (schema.Vocabulary, error) {
	if path == "" {
		return schema.DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Vocabulary{}, fmt.Errorf("failed to read vocabulary file %q: %w", path, err)
	}

	var vocab schema.Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return schema.Vocabulary{}, fmt.Errorf("failed to parse vocabulary file %q: %w", path, err)
	}

	if len(vocab.ComplexityIndicators) == 0 && len(vocab.DecisionKeywords) == 0 &&
		len(vocab.ImpactKeywords) == 0 && len(vocab.IndependenceKeywords) == 0 {
		return schema.Vocabulary{}, fmt.Errorf("vocabulary file %q has no keyword lists", path)
	}
	return vocab, nil
}

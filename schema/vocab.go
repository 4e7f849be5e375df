package schema

// Vocabulary holds the keyword lists used by the complexity heuristics.
// Vocabularies are versioned data, not code: they can be overridden from
// configuration and tuned independently of the aggregation logic.
type Vocabulary struct {
	Version string `json:"version" mapstructure:"version"`

	// ComplexityIndicators raise the task-complexity keyword-density score.
	ComplexityIndicators []string `json:"complexity_indicators" mapstructure:"complexity-indicators"`

	// DecisionKeywords mark responsibilities that involve making decisions.
	DecisionKeywords []string `json:"decision_keywords" mapstructure:"decision-keywords"`

	// ImpactKeywords mark responsibilities whose outcomes carry weight.
	ImpactKeywords []string `json:"impact_keywords" mapstructure:"impact-keywords"`

	// IndependenceKeywords mark responsibilities performed autonomously.
	IndependenceKeywords []string `json:"independence_keywords" mapstructure:"independence-keywords"`
}

// DefaultVocabulary returns the compiled-in vocabulary. Callers that tune
// keyword lists supply their own Vocabulary instead.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Version: "2024.1",
		ComplexityIndicators: []string{
			"analyze", "evaluate", "design", "develop", "coordinate",
			"diagnose", "negotiate", "synthesize", "optimize", "integrate",
			"formulate", "interpret", "investigate", "strategize", "architect",
		},
		DecisionKeywords: []string{
			"decide", "determine", "select", "choose", "approve",
			"authorize", "prioritize", "judge", "resolve",
		},
		ImpactKeywords: []string{
			"critical", "strategic", "outcome", "revenue", "safety",
			"compliance", "budget", "stakeholder",
		},
		IndependenceKeywords: []string{
			"independently", "autonomous", "self-directed", "lead",
			"own", "discretion", "unsupervised",
		},
	}
}

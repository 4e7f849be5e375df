package schema

// OccupationTask is the validated task record for occupation-complexity
// scoring. Loosely-typed upstream records must be shaped into this before
// they reach the engine.
type OccupationTask struct {
	Description    string   `json:"description"`
	Tools          []string `json:"tools"`
	WorkActivities []string `json:"work_activities"`
}

// OccupationSkill is one skill attached to an occupation.
type OccupationSkill struct {
	Name     string  `json:"name"`
	Level    float64 `json:"level"` // Proficiency on a 1-5 scale
	Category string  `json:"category"`
}

// OccupationTechnology is one technology used by an occupation.
type OccupationTechnology struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	ReleaseYear int    `json:"release_year"` // Used for the recency sub-signal
}

// OccupationProfile bundles all complexity inputs for one occupation.
type OccupationProfile struct {
	Name             string                 `json:"name"`
	Task             OccupationTask         `json:"task"`
	Skills           []OccupationSkill      `json:"skills"`
	Technologies     []OccupationTechnology `json:"technologies"`
	Responsibilities []string               `json:"responsibilities"`
}

// ComplexityFactors holds four independent complexity scores (0-1). Callers
// choose how to combine them; the engine applies no weighting across the
// four.
type ComplexityFactors struct {
	TaskComplexity              float64 `json:"task_complexity"`
	SkillRequirements           float64 `json:"skill_requirements"`
	TechnologicalSophistication float64 `json:"technological_sophistication"`
	DecisionMakingAutonomy      float64 `json:"decision_making_autonomy"`
}

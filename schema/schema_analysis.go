package schema

// JobImpactAnalysis holds the automation risk and augmentation outlook for a
// (technology, industry) pair. All scores are 0-1.
type JobImpactAnalysis struct {
	AutomationRisk        float64  `json:"automation_risk"`
	AugmentationPotential float64  `json:"augmentation_potential"`
	NewRoleCreation       float64  `json:"new_role_creation"`
	SkillTransferability  float64  `json:"skill_transferability"`
	MitigationStrategies  []string `json:"mitigation_strategies"`
}

// TrainingNeed is one prioritized gap between required and current skills.
type TrainingNeed struct {
	Skill           string   `json:"skill"`
	Priority        Priority `json:"priority"`
	MonthsToAcquire float64  `json:"months_to_acquire"`
	Resources       []string `json:"resources"`
}

// SkillGapAnalysis summarizes how far current skills fall short of a
// technology's requirements.
type SkillGapAnalysis struct {
	GapSeverity        float64        `json:"gap_severity"`        // 0-1, 0 when no required skill is missing
	TrainingNeeds      []TrainingNeed `json:"training_needs"`      // One entry per missing skill, input order
	MarketAvailability float64        `json:"market_availability"` // Mean availability across ALL required skills
}

// ReadinessRecommendation is one actionable step toward implementation
// readiness.
type ReadinessRecommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Action   string   `json:"action"`
	Timeline string   `json:"timeline"`
}

// ImplementationReadiness scores how prepared an organization is to adopt a
// technology.
type ImplementationReadiness struct {
	TechnicalReadiness float64                   `json:"technical_readiness"`
	ResourceReadiness  float64                   `json:"resource_readiness"`
	CulturalReadiness  float64                   `json:"cultural_readiness"`
	OverallScore       float64                   `json:"overall_score"` // Unweighted mean of the three readiness scores
	Recommendations    []ReadinessRecommendation `json:"recommendations"`
}

// ImplementationPhase is one scheduled phase of a technology rollout.
type ImplementationPhase struct {
	Name         string   `json:"name"`
	StartMonth   float64  `json:"start_month"`
	Duration     float64  `json:"duration"` // Months
	Dependencies []string `json:"dependencies"`
	Risks        []string `json:"risks"`
}

// End returns the month at which the phase completes.
func (p ImplementationPhase) End() float64 {
	return p.StartMonth + p.Duration
}

// TimelineProjection is the scheduled rollout plan for a technology.
type TimelineProjection struct {
	Phases          []ImplementationPhase `json:"phases"`
	CriticalPath    []string              `json:"critical_path"` // Phase names ordered by completion month
	TotalMonths     float64               `json:"total_months"`
	ConfidenceLevel float64               `json:"confidence_level"`
}

// EmergingTechAnalysis bundles all four analyses for one (technology,
// skills, industry) triple. It is derived, read-only output recomputed on
// every call; caching is a caller concern.
type EmergingTechAnalysis struct {
	TechnologyID string                  `json:"technology_id"`
	Technology   string                  `json:"technology"`
	Industry     string                  `json:"industry"`
	JobImpact    JobImpactAnalysis       `json:"job_impact"`
	SkillGaps    SkillGapAnalysis        `json:"skill_gaps"`
	Readiness    ImplementationReadiness `json:"readiness"`
	Timeline     TimelineProjection      `json:"timeline"`
}

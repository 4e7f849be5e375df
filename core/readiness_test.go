package core

import (
	"testing"

	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
)

func readyTechnology() *schema.Technology {
	return &schema.Technology{
		Name: "Document AI",
		ImplementationFactors: schema.ImplementationFactors{
			CostFactors: schema.CostFactors{
				InitialInvestment: 0.3,
				OperationalCost:   0.2,
				PaybackMonths:     12,
			},
			InfrastructureRequirements: schema.InfrastructureRequirements{
				Hardware: []string{"GPU servers"},
				Software: []string{"OCR pipeline", "Model registry"},
				Security: []string{"PII controls"},
			},
			OrganizationalReadiness: schema.OrganizationalReadiness{
				TechnicalCapability:  0.8,
				ChangeManagement:     0.7,
				ResourceAvailability: 0.75,
				LeadershipSupport:    0.9,
			},
		},
	}
}

// TestAssessScoresInRange ensures all readiness scores are clamped and the
// overall score is the unweighted mean.
func TestAssessScoresInRange(t *testing.T) {
	assessor := NewReadinessAssessor()

	r := assessor.Assess(readyTechnology())

	for name, score := range map[string]float64{
		"technical": r.TechnicalReadiness,
		"resource":  r.ResourceReadiness,
		"cultural":  r.CulturalReadiness,
		"overall":   r.OverallScore,
	} {
		assert.True(t, score >= 0 && score <= 1, "%s out of range: %f", name, score)
	}

	expected := (r.TechnicalReadiness + r.ResourceReadiness + r.CulturalReadiness) / 3
	assert.InDelta(t, expected, r.OverallScore, 0.0001)
}

// TestAssessRecommendations checks that weak categories emit
// recommendations and the monitoring entry is always last.
func TestAssessRecommendations(t *testing.T) {
	assessor := NewReadinessAssessor()

	t.Run("ready org gets only monitoring", func(t *testing.T) {
		r := assessor.Assess(readyTechnology())
		assert.Len(t, r.Recommendations, 1)
		assert.Equal(t, "monitoring", r.Recommendations[0].Category)
	})

	t.Run("unready org gets all categories", func(t *testing.T) {
		tech := readyTechnology()
		tech.ImplementationFactors.OrganizationalReadiness = schema.OrganizationalReadiness{}
		tech.ImplementationFactors.CostFactors = schema.CostFactors{
			InitialInvestment: 0.9,
			OperationalCost:   0.9,
			PaybackMonths:     48,
		}

		r := assessor.Assess(tech)
		categories := make([]string, 0, len(r.Recommendations))
		for _, rec := range r.Recommendations {
			categories = append(categories, rec.Category)
		}
		assert.Equal(t, []string{"technical", "resource", "cultural", "monitoring"}, categories)
	})
}

// TestInfrastructureComplexity checks the saturating requirement count.
func TestInfrastructureComplexity(t *testing.T) {
	tech := readyTechnology()
	// 4 requirement strings out of a 20 saturation point.
	assert.InDelta(t, 0.2, InfrastructureComplexity(tech), 0.0001)

	for range 30 {
		tech.ImplementationFactors.InfrastructureRequirements.Hardware = append(
			tech.ImplementationFactors.InfrastructureRequirements.Hardware, "rack")
	}
	assert.Equal(t, 1.0, InfrastructureComplexity(tech))
}

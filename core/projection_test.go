package core

import (
	"testing"
	"time"

	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
)

// fixedProjector returns a projector pinned to a fixed clock so projected
// years are stable in assertions.
func fixedProjector() (*TimeBasedProjector, int) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := NewTimeBasedProjector()
	p.now = func() time.Time { return now }
	return p, now.Year()
}

func growthTechnology() *schema.Technology {
	return &schema.Technology{
		Name:          "Workflow Orchestration AI",
		MaturityLevel: schema.Growth,
		ImpactScore:   0.85,
		MarketProjections: []schema.MarketProjection{
			{Year: 2025, MarketSize: 1200, GrowthRate: 22, AdoptionRate: 0.35, Confidence: 0.8},
			{Year: 2026, MarketSize: 1500, GrowthRate: 25, AdoptionRate: 0.45, Confidence: 0.75},
		},
	}
}

// TestCalculateTimeBasedAPO pins the monotonic projection invariant: five
// ordered years, non-decreasing scores, non-increasing confidence.
func TestCalculateTimeBasedAPO(t *testing.T) {
	projector, year := fixedProjector()

	projections, err := projector.CalculateTimeBasedAPO(0.5, growthTechnology(), 5, nil)
	assert.NoError(t, err)
	assert.Len(t, projections, 5)

	for i, proj := range projections {
		assert.Equal(t, year+i+1, proj.Year)
		assert.True(t, proj.Score >= 0 && proj.Score <= 1)
		assert.NotEmpty(t, proj.KeyFactors)

		if i > 0 {
			assert.GreaterOrEqual(t, proj.Score, projections[i-1].Score)
			assert.LessOrEqual(t, proj.Confidence, projections[i-1].Confidence)
		}
	}
}

// TestCalculateTimeBasedAPOConfidenceBase checks the historical-data
// confidence base and its 0.3 floor.
func TestCalculateTimeBasedAPOConfidenceBase(t *testing.T) {
	projector, _ := fixedProjector()
	tech := growthTechnology()

	t.Run("without history", func(t *testing.T) {
		projections, err := projector.CalculateTimeBasedAPO(0.5, tech, 1, nil)
		assert.NoError(t, err)
		assert.InDelta(t, 0.6*0.9, projections[0].Confidence, 0.0001)
	})

	t.Run("with history", func(t *testing.T) {
		history := []schema.HistoricalDataPoint{
			{Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), AutomationScore: 0.4},
			{Timestamp: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), AutomationScore: 0.5},
		}
		projections, err := projector.CalculateTimeBasedAPO(0.5, tech, 1, history)
		assert.NoError(t, err)
		assert.InDelta(t, 0.8*0.9, projections[0].Confidence, 0.0001)
		assert.Contains(t, projections[0].KeyFactors, schema.FactorHistoricalTrend)
	})

	t.Run("confidence floors at 0.3", func(t *testing.T) {
		projections, err := projector.CalculateTimeBasedAPO(0.5, tech, 12, nil)
		assert.NoError(t, err)
		last := projections[len(projections)-1]
		assert.Equal(t, 0.3, last.Confidence)
	})
}

// TestCalculateTimeBasedAPOInvalidInput covers the fail-fast boundary.
func TestCalculateTimeBasedAPOInvalidInput(t *testing.T) {
	projector, _ := fixedProjector()

	_, err := projector.CalculateTimeBasedAPO(0.5, nil, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = projector.CalculateTimeBasedAPO(0.5, growthTechnology(), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = projector.CalculateTimeBasedAPO(1.5, growthTechnology(), 5, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestProjectTechnologyImpact checks the fixed term multipliers and the
// industry confidence base.
func TestProjectTechnologyImpact(t *testing.T) {
	projector, _ := fixedProjector()
	tech := growthTechnology()

	t.Run("with industry data", func(t *testing.T) {
		industry := &schema.IndustryImpact{Industry: "Logistics", AdoptionRate: 0.6}
		metrics, err := projector.ProjectTechnologyImpact(tech, 5, industry)
		assert.NoError(t, err)

		base := 0.85 * 0.6
		assert.InDelta(t, base, metrics.ShortTerm.Impact, 0.0001)
		assert.InDelta(t, base*0.8, metrics.MediumTerm.Impact, 0.0001)
		assert.InDelta(t, base*0.6, metrics.LongTerm.Impact, 0.0001)
		assert.InDelta(t, 0.9, metrics.ShortTerm.Confidence, 0.0001)
	})

	t.Run("without industry data", func(t *testing.T) {
		metrics, err := projector.ProjectTechnologyImpact(tech, 5, nil)
		assert.NoError(t, err)
		// Falls back to the latest market projection's adoption rate.
		assert.InDelta(t, 0.85*0.45, metrics.ShortTerm.Impact, 0.0001)
		assert.InDelta(t, 0.7, metrics.ShortTerm.Confidence, 0.0001)
	})

	t.Run("invalid years", func(t *testing.T) {
		_, err := projector.ProjectTechnologyImpact(tech, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// TestAssessTechnologyMaturity pins the advancement, ceiling and -1 rules.
func TestAssessTechnologyMaturity(t *testing.T) {
	projector, _ := fixedProjector()

	tests := []struct {
		name            string
		level           schema.MaturityLevel
		yearsOffset     int
		expectedLevel   schema.MaturityLevel
		expectNextLevel bool
	}{
		{"no offset keeps level", schema.Emerging, 0, schema.Emerging, true},
		{"two years advances one level", schema.Emerging, 2, schema.Growth, true},
		{"advancement caps at declining", schema.Experimental, 40, schema.Declining, false},
		{"mature reports no next level", schema.Mature, 0, schema.Mature, false},
		{"declining reports no next level", schema.Declining, 3, schema.Declining, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := growthTechnology()
			tech.MaturityLevel = tt.level

			assessment, err := projector.AssessTechnologyMaturity(tech, tt.yearsOffset)
			assert.NoError(t, err)
			assert.Equal(t, tt.level, assessment.CurrentLevel)
			assert.Equal(t, tt.expectedLevel, assessment.ProjectedLevel)

			if tt.expectNextLevel {
				assert.GreaterOrEqual(t, assessment.TimeToNextLevel, 12)
			} else {
				assert.Equal(t, -1, assessment.TimeToNextLevel)
			}
		})
	}
}

// TestAssessTechnologyMaturityFloor ensures the 12-month floor holds even
// for fast-growing, highly adopted technologies.
func TestAssessTechnologyMaturityFloor(t *testing.T) {
	projector, _ := fixedProjector()

	tech := growthTechnology()
	tech.MaturityLevel = schema.Emerging
	tech.MarketProjections = []schema.MarketProjection{
		{Year: 2026, GrowthRate: 90, AdoptionRate: 0.95, Confidence: 0.9},
	}

	assessment, err := projector.AssessTechnologyMaturity(tech, 0)
	assert.NoError(t, err)
	assert.Equal(t, 12, assessment.TimeToNextLevel)
}

// TestHistoricalTrend checks the consecutive-delta mean.
func TestHistoricalTrend(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []schema.HistoricalDataPoint{
		{Timestamp: base, AutomationScore: 0.2},
		{Timestamp: base.AddDate(0, 1, 0), AutomationScore: 0.4},
		{Timestamp: base.AddDate(0, 2, 0), AutomationScore: 0.5},
	}

	assert.InDelta(t, 0.15, historicalTrend(points), 0.0001)
	assert.Zero(t, historicalTrend(points[:1]))
	assert.Zero(t, historicalTrend(nil))
}

package iostore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func TestRunStoreLifecycle(t *testing.T) {
	store := newTestRunStore(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runID, err := store.BeginRun(start, map[string]any{"industry": "Healthcare", "years": 5})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	analysisTime := start.Add(2 * time.Second)
	err = store.RecordScores(runID, "tech-001", schema.ScoreRecord{
		AnalysisTime:          analysisTime,
		Industry:              "Healthcare",
		AutomationRisk:        0.70,
		AugmentationPotential: 0.80,
		SkillGapSeverity:      0.45,
		ReadinessScore:        0.62,
		TimelineMonths:        18.5,
		Confidence:            0.75,
	})
	require.NoError(t, err)

	for year, score := range map[int]float64{2027: 0.55, 2028: 0.61} {
		err = store.RecordProjection(runID, "tech-001", schema.ProjectionRecord{
			AnalysisTime: analysisTime,
			Year:         year,
			Score:        score,
			Confidence:   0.7,
		})
		require.NoError(t, err)
	}

	err = store.EndRun(runID, start.Add(5*time.Second), 1)
	require.NoError(t, err)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 1, status.TotalTechnologies)
	assert.Equal(t, int64(1), status.TableSizes[scoresTable])
	assert.Equal(t, int64(2), status.TableSizes[projectionsTable])
}

func TestRunStoreGetAll(t *testing.T) {
	store := newTestRunStore(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runID, err := store.BeginRun(start, map[string]any{"years": 3})
	require.NoError(t, err)
	require.NoError(t, store.RecordScores(runID, "tech-009", schema.ScoreRecord{
		AnalysisTime: start, Industry: "Retail", AutomationRisk: 0.4,
	}))
	require.NoError(t, store.RecordProjection(runID, "tech-009", schema.ProjectionRecord{
		AnalysisTime: start, Year: 2027, Score: 0.5, Confidence: 0.6,
	}))
	require.NoError(t, store.EndRun(runID, start.Add(time.Second), 1))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	require.NotNil(t, runs[0].EndTime)
	assert.Equal(t, int32(1), runs[0].TotalTechnologies)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(1000), *runs[0].RunDurationMs)

	scores, err := store.GetAllScores()
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "tech-009", scores[0].TechnologyID)
	assert.Equal(t, "Retail", scores[0].Industry)

	projections, err := store.GetAllProjections()
	require.NoError(t, err)
	require.Len(t, projections, 1)
	assert.Equal(t, 2027, projections[0].Year)
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	assert.NoError(t, store.RecordScores(0, "tech-001", schema.ScoreRecord{}))
	assert.NoError(t, store.RecordProjection(0, "tech-001", schema.ProjectionRecord{}))
	assert.NoError(t, store.EndRun(0, time.Now(), 0))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("autoscope_runs"))
	assert.NoError(t, validateTableName("_private"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("1leading"))
	assert.Error(t, validateTableName("bad-name"))
	assert.Error(t, validateTableName("x; DROP TABLE y"))
}

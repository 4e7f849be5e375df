package contract

import (
	"testing"

	"github.com/apolabs/autoscope/schema"
	"github.com/stretchr/testify/assert"
)

// defaultRawInput returns a raw input that passes validation unchanged.
func defaultRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Workers:      4,
		Precision:    DefaultPrecision,
		Output:       "text",
		CacheBackend: "none",
		RunBackend:   "none",
		Emoji:        "no",
		Color:        "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, defaultRawInput())
	assert.NoError(t, err)

	assert.Equal(t, DefaultProjectionYears, cfg.ProjectionYears)
	assert.Equal(t, DefaultTimeframe, cfg.Timeframe)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.CacheBackend)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
	assert.InDelta(t, 1.0, sumWeights(cfg.ConfidenceWeights), 0.0001)
}

func sumWeights(weights map[string]float64) float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	return sum
}

func TestProcessAndValidateSkills(t *testing.T) {
	cfg := &Config{}
	input := defaultRawInput()
	input.Skills = "Python, Data Engineering , ,SQL"

	err := ProcessAndValidate(cfg, input)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Python", "Data Engineering", "SQL"}, cfg.CurrentSkills)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		errMsg string
	}{
		{"zero workers", func(i *ConfigRawInput) { i.Workers = 0 }, "workers"},
		{"precision too high", func(i *ConfigRawInput) { i.Precision = 9 }, "precision"},
		{"bad output", func(i *ConfigRawInput) { i.Output = "xml" }, "invalid output format"},
		{"bad cache backend", func(i *ConfigRawInput) { i.CacheBackend = "oracle" }, "invalid cache backend"},
		{"bad emoji flag", func(i *ConfigRawInput) { i.Emoji = "maybe" }, "--emoji"},
		{"years too high", func(i *ConfigRawInput) { i.Years = 99 }, "years"},
		{"negative base score", func(i *ConfigRawInput) { i.BaseScore = -0.1 }, "base-score"},
		{"timeframe too high", func(i *ConfigRawInput) { i.Timeframe = 999 }, "timeframe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := defaultRawInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestValidateStoreConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.StoreBackend
		connStr string
		wantErr bool
	}{
		{"sqlite accepts empty", schema.SQLiteBackend, "", false},
		{"none accepts empty", schema.NoneBackend, "", false},
		{"mysql requires conn", schema.MySQLBackend, "", true},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/autoscope", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/autoscope", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 dbname=autoscope", false},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStoreConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLiteDefaultPathConflict(t *testing.T) {
	input := defaultRawInput()
	input.CacheBackend = "sqlite"
	input.RunBackend = "sqlite"
	input.CacheDBConnect = "/tmp/same.db"
	input.RunDBConnect = "/tmp/same.db"

	err := ProcessAndValidate(&Config{}, input)
	assert.ErrorContains(t, err, "different SQLite database files")
}

func TestProcessConfidenceWeightsRaw(t *testing.T) {
	t.Run("partial override keeps blend valid", func(t *testing.T) {
		dq := 0.30
		ir := 0.10
		weights, err := ProcessConfidenceWeightsRaw(ConfidenceWeightsRaw{DataQuality: &dq, IndustryRelevance: &ir}, true)
		assert.NoError(t, err)
		assert.Equal(t, 0.30, weights[schema.MetricDataQuality])
		assert.Equal(t, 0.10, weights[schema.MetricIndustryRelevance])
		// Untouched metrics keep their defaults.
		assert.Equal(t, schema.TechMaturityWeight, weights[schema.MetricTechMaturity])
	})

	t.Run("bad sum rejected", func(t *testing.T) {
		dq := 0.90
		_, err := ProcessConfidenceWeightsRaw(ConfidenceWeightsRaw{DataQuality: &dq}, true)
		assert.ErrorContains(t, err, "sum to 1.0")
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		dq := -0.25
		_, err := ProcessConfidenceWeightsRaw(ConfidenceWeightsRaw{DataQuality: &dq}, true)
		assert.ErrorContains(t, err, "non-negative")
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, defaultRawInput())
	assert.NoError(t, err)
	cfg.CurrentSkills = []string{"Python"}

	clone := cfg.Clone()
	clone.CurrentSkills[0] = "Rust"
	clone.ConfidenceWeights[schema.MetricDataQuality] = 0.99

	assert.Equal(t, "Python", cfg.CurrentSkills[0])
	assert.Equal(t, schema.DataQualityWeight, cfg.ConfidenceWeights[schema.MetricDataQuality])
}

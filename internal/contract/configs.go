package contract

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/apolabs/autoscope/schema"
)

// Default values for configuration.
const (
	DefaultProjectionYears = 5
	MaxProjectionYears     = 30
	DefaultTimeframe       = 12
	MaxTimeframe           = 120
	DefaultPrecision       = 2
	MaxPrecision           = 4
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ConfidenceWeightsRaw holds custom blend weights for the confidence metrics.
// Use float64 pointers so omitted fields fall back to the defaults.
type ConfidenceWeightsRaw struct {
	DataQuality       *float64 `mapstructure:"data_quality"`
	PredictionHorizon *float64 `mapstructure:"prediction_horizon"`
	MarketStability   *float64 `mapstructure:"market_stability"`
	TechMaturity      *float64 `mapstructure:"technology_maturity"`
	IndustryRelevance *float64 `mapstructure:"industry_relevance"`
}

// Config holds the runtime configuration for an analysis.
// This struct remains the "final, validated" config.
type Config struct {
	TechnologyPath string
	Industry       string
	CurrentSkills  []string
	HistoryPath    string
	VocabularyPath string

	ProjectionYears int
	Timeframe       int // months, for correlation windows
	BaseScore       float64

	Workers    int
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.StoreBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunBackend   schema.StoreBackend
	RunDBConnect string // Please use env var as this is plaintext

	// ConfidenceWeights is the final blend for the confidence metrics,
	// computed from defaults plus any overrides from the config file.
	ConfidenceWeights map[string]float64

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TechnologyPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Industry       string `mapstructure:"industry"`
	Skills         string `mapstructure:"skills"`
	SkillsFile     string `mapstructure:"skills-file"`
	HistoryFile    string `mapstructure:"history-file"`
	VocabularyFile string `mapstructure:"vocabulary-file"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	RunBackend     string `mapstructure:"run-backend"`
	RunDBConnect   string `mapstructure:"run-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Fields from projectCmd.Flags() ---
	Years     int     `mapstructure:"years"`
	BaseScore float64 `mapstructure:"base-score"`

	// --- Fields from correlateCmd.Flags() ---
	Timeframe int `mapstructure:"timeframe"`

	// --- Confidence weights from config file ---
	Weights ConfidenceWeightsRaw `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CurrentSkills != nil {
		clone.CurrentSkills = make([]string, len(c.CurrentSkills))
		copy(clone.CurrentSkills, c.CurrentSkills)
	}
	if c.ConfidenceWeights != nil {
		clone.ConfidenceWeights = make(map[string]float64)
		maps.Copy(clone.ConfidenceWeights, c.ConfidenceWeights)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAnalysisInputs(cfg, input); err != nil {
		return err
	}
	if err := processConfidenceWeights(cfg, input); err != nil {
		return err
	}
	if err := resolveInputPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and run backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.StoreBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidStoreBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateStoreConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Run Backend Validation ---
	cfg.RunBackend = schema.StoreBackend(strings.ToLower(input.RunBackend))
	if cfg.RunBackend != "" {
		if _, ok := schema.ValidStoreBackends[cfg.RunBackend]; !ok {
			return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
		}
		cfg.RunDBConnect = input.RunDBConnect
		if err := ValidateStoreConnectionString(cfg.RunBackend, cfg.RunDBConnect); err != nil {
			return err
		}

		// Validate that cache and run tracking use different databases
		if cfg.CacheBackend == cfg.RunBackend && cfg.CacheBackend != schema.NoneBackend {
			// For SQLite, resolve to actual file paths to catch default path conflicts
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				runDBPath := cfg.RunDBConnect
				if runDBPath == "" {
					runDBPath = GetRunDBFilePath()
				}
				if cacheDBPath == runDBPath {
					return fmt.Errorf("cache and run storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Industry = strings.TrimSpace(input.Industry)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 3. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	// --- 4. Current Skills Processing ---
	if input.Skills != "" {
		parts := strings.SplitSeq(input.Skills, ",")
		for p := range parts {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.CurrentSkills = append(cfg.CurrentSkills, trimmedP)
			}
		}
	}

	return nil
}

// processAnalysisInputs handles the projection and correlation parameters.
func processAnalysisInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ProjectionYears = input.Years
	if cfg.ProjectionYears == 0 {
		cfg.ProjectionYears = DefaultProjectionYears
	}
	if cfg.ProjectionYears < 1 || cfg.ProjectionYears > MaxProjectionYears {
		return fmt.Errorf("years must be between 1 and %d (received %d)", MaxProjectionYears, input.Years)
	}

	cfg.Timeframe = input.Timeframe
	if cfg.Timeframe == 0 {
		cfg.Timeframe = DefaultTimeframe
	}
	if cfg.Timeframe < 1 || cfg.Timeframe > MaxTimeframe {
		return fmt.Errorf("timeframe must be between 1 and %d months (received %d)", MaxTimeframe, input.Timeframe)
	}

	cfg.BaseScore = input.BaseScore
	if cfg.BaseScore < 0 || cfg.BaseScore > 1 {
		return fmt.Errorf("base-score must be between 0.0 and 1.0 (received %.2f)", input.BaseScore)
	}

	return nil
}

// ProcessConfidenceWeightsRaw converts ConfidenceWeightsRaw into a weights map.
// If validateSum is true, it validates that the full blend sums to 1.0.
func ProcessConfidenceWeightsRaw(weights ConfidenceWeightsRaw, validateSum bool) (map[string]float64, error) {
	// Start from the defaults so partial overrides keep a complete blend.
	result := schema.GetConfidenceWeights()

	if weights.DataQuality != nil {
		result[schema.MetricDataQuality] = *weights.DataQuality
	}
	if weights.PredictionHorizon != nil {
		result[schema.MetricPredictionHorizon] = *weights.PredictionHorizon
	}
	if weights.MarketStability != nil {
		result[schema.MetricMarketStability] = *weights.MarketStability
	}
	if weights.TechMaturity != nil {
		result[schema.MetricTechMaturity] = *weights.TechMaturity
	}
	if weights.IndustryRelevance != nil {
		result[schema.MetricIndustryRelevance] = *weights.IndustryRelevance
	}

	if validateSum {
		sum := 0.0
		for _, w := range result {
			if w < 0 {
				return nil, fmt.Errorf("confidence weights must be non-negative, got %.3f", w)
			}
			sum += w
		}
		if sum < 0.999 || sum > 1.001 {
			return nil, fmt.Errorf("confidence weights must sum to 1.0, got %.3f", sum)
		}
	}

	return result, nil
}

// processConfidenceWeights converts the raw input into the final
// cfg.ConfidenceWeights map and validates the blend.
func processConfidenceWeights(cfg *Config, input *ConfigRawInput) error {
	weights, err := ProcessConfidenceWeightsRaw(input.Weights, true)
	if err != nil {
		return err
	}
	cfg.ConfidenceWeights = weights
	return nil
}

// resolveInputPaths resolves the technology record path plus the optional
// skills, history and vocabulary files.
func resolveInputPaths(cfg *Config, input *ConfigRawInput) error {
	if input.TechnologyPathStr != "" {
		absPath, err := filepath.Abs(input.TechnologyPathStr)
		if err != nil {
			return err
		}
		if _, err := os.Stat(absPath); err != nil {
			return fmt.Errorf("technology file not found: %s", input.TechnologyPathStr)
		}
		cfg.TechnologyPath = filepath.Clean(absPath)
	}

	resolveOptional := func(path, label string) (string, error) {
		if path == "" {
			return "", nil
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(absPath); err != nil {
			return "", fmt.Errorf("%s file not found: %s", label, path)
		}
		return filepath.Clean(absPath), nil
	}

	historyPath, err := resolveOptional(input.HistoryFile, "history")
	if err != nil {
		return err
	}
	cfg.HistoryPath = historyPath

	vocabPath, err := resolveOptional(input.VocabularyFile, "vocabulary")
	if err != nil {
		return err
	}
	cfg.VocabularyPath = vocabPath

	// A skills file extends whatever was passed via --skills.
	if input.SkillsFile != "" {
		skillsPath, err := resolveOptional(input.SkillsFile, "skills")
		if err != nil {
			return err
		}
		skills, err := LoadSkills(skillsPath)
		if err != nil {
			return err
		}
		cfg.CurrentSkills = append(cfg.CurrentSkills, skills...)
	}

	return nil
}

//go:build integration

// Package integration contains integration tests for autoscope.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// technologyFixture is a complete record that passes input validation and
// declares a Healthcare industry impact for the analyze command.
const technologyFixture = `{
  "id": "tech-int-001",
  "name": "Document Understanding AI",
  "category": "Machine Learning",
  "maturity_level": "Growth",
  "impact_score": 0.7,
  "time_to_mainstream": 24,
  "skill_requirements": [
    {"name": "Python", "proficiency_level": 0.6, "demand_trend": "increasing", "availability_score": 0.7, "months_to_acquire": 6},
    {"name": "MLOps", "proficiency_level": 0.5, "demand_trend": "increasing", "availability_score": 0.4, "months_to_acquire": 9}
  ],
  "industry_impacts": [
    {"industry": "Healthcare", "disruption_level": 0.6, "adoption_rate": 0.3,
     "jobs_affected": {"created": 120, "modified": 800, "displaced": 200},
     "months_to_impact": 18, "barriers": ["Regulation"], "opportunities": ["Claims triage"]}
  ],
  "disruption_potential": {
    "process_automation": 0.7, "decision_augmentation": 0.6, "skill_obsolescence": 0.4,
    "new_capability_creation": 0.5, "market_restructuring": 0.3
  },
  "implementation_factors": {
    "cost_factors": {"initial_investment": 0.5, "operational_cost": 0.4, "payback_months": 14},
    "infrastructure_requirements": {"hardware": ["GPU nodes"], "software": ["Model registry"], "connectivity": [], "security": ["PHI controls"]},
    "organizational_readiness": {"technical_capability": 0.6, "change_management": 0.5, "resource_availability": 0.5, "leadership_support": 0.7},
    "risks": {"technical": ["Model drift"], "financial": [], "organizational": ["Training load"], "market": []}
  },
  "market_projections": [
    {"year": 2027, "market_size": 4200, "growth_rate": 18, "adoption_rate": 0.35, "confidence": 0.7,
     "key_drivers": ["Cost pressure"], "barriers": ["Integration effort"]}
  ],
  "related_technologies": ["OCR"]
}`

// runAutoscope runs the shared binary with an isolated HOME so SQLite files
// never touch the real home directory. Returns combined output.
func runAutoscope(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(getAutoscopeBinary(), args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(), "HOME="+home)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}

// TestAnalyzeWorkflow runs the main analysis workflow end to end against the
// default SQLite backends.
func TestAnalyzeWorkflow(t *testing.T) {
	home := t.TempDir()
	techPath := filepath.Join(home, "tech.json")
	require.NoError(t, os.WriteFile(techPath, []byte(technologyFixture), 0o644))

	// Version works without any configuration.
	out, err := runAutoscope(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "autoscope CLI")

	// First analysis computes and caches.
	out, err = runAutoscope(t, home, "analyze", techPath, "--industry", "Healthcare", "--skills", "Python")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Document Understanding AI")

	// Second analysis with identical inputs is served from cache.
	out, err = runAutoscope(t, home, "analyze", techPath, "--industry", "Healthcare", "--skills", "Python")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Document Understanding AI")

	// Cache status reflects the stored entry.
	out, err = runAutoscope(t, home, "cache", "status")
	require.NoError(t, err, out)
	assert.Contains(t, out, "sqlite")

	// Cache clear succeeds and reports it.
	out, err = runAutoscope(t, home, "cache", "clear")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Cache cleared successfully.")
}

// TestProjectionWorkflow exercises projection and related commands with run
// tracking enabled.
func TestProjectionWorkflow(t *testing.T) {
	home := t.TempDir()
	techPath := filepath.Join(home, "tech.json")
	require.NoError(t, os.WriteFile(techPath, []byte(technologyFixture), 0o644))

	env := func(args ...string) (string, error) {
		cmd := exec.Command(getAutoscopeBinary(), args...)
		cmd.Dir = home
		cmd.Env = append(os.Environ(), "HOME="+home, "AUTOSCOPE_RUN_BACKEND=sqlite")
		var buf bytes.Buffer
		cmd.Stdout = &buf
		cmd.Stderr = &buf
		err := cmd.Run()
		return buf.String(), err
	}

	out, err := env("project", techPath, "--years", "3")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Document Understanding AI")

	out, err = env("maturity", techPath, "--years", "3")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Growth")

	out, err = env("confidence", techPath, "--years", "3")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Overall")

	out, err = env("store", "status")
	require.NoError(t, err, out)
	assert.Contains(t, out, "sqlite")

	exportPath := filepath.Join(home, "export.parquet")
	out, err = env("store", "export", "--output-file", exportPath)
	require.NoError(t, err, out)

	out, err = env("store", "clear")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Run data cleared successfully.")
}

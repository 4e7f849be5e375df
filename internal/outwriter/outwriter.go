// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints a full technology analysis using the configured output format.
func (ow *OutWriter) WriteAnalysis(analysis *schema.EmergingTechAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintAnalysisResults(analysis, cfg, duration)
}

// WriteProjections prints multi-year projections using the configured output format.
func (ow *OutWriter) WriteProjections(technology string, projections []schema.TimeBasedProjection, cfg *contract.Config, duration time.Duration) error {
	return PrintProjectionResults(technology, projections, cfg, duration)
}

// WriteImpact prints short/medium/long-term impact metrics using the configured output format.
func (ow *OutWriter) WriteImpact(technology string, metrics schema.ImpactMetrics, cfg *contract.Config) error {
	return PrintImpactResults(technology, metrics, cfg)
}

// WriteMaturity prints a maturity assessment using the configured output format.
func (ow *OutWriter) WriteMaturity(technology string, assessment schema.MaturityAssessment, cfg *contract.Config) error {
	return PrintMaturityResults(technology, assessment, cfg)
}

// WriteCorrelation prints a historical correlation analysis using the configured output format.
func (ow *OutWriter) WriteCorrelation(technology string, result schema.CorrelationResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCorrelationResults(technology, result, cfg, duration)
}

// WriteConfidence prints a confidence assessment using the configured output format.
func (ow *OutWriter) WriteConfidence(technology string, score schema.ConfidenceScore, cfg *contract.Config) error {
	return PrintConfidenceResults(technology, score, cfg)
}

// WriteComplexity prints occupation complexity factors using the configured output format.
func (ow *OutWriter) WriteComplexity(occupation string, factors schema.ComplexityFactors, cfg *contract.Config) error {
	return PrintComplexityResults(occupation, factors, cfg)
}

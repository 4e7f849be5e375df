package cmd

import (
	"fmt"
	"time"

	"github.com/apolabs/autoscope/core"
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/internal/iostore"
	"github.com/apolabs/autoscope/internal/outwriter"
	"github.com/apolabs/autoscope/schema"
)

// requireTechnology loads the technology record named by the positional
// argument, failing when none was given.
func requireTechnology(cfg *contract.Config) (*schema.Technology, error) {
	if cfg.TechnologyPath == "" {
		return nil, fmt.Errorf("a technology record file is required (autoscope <command> <tech-file>)")
	}
	return contract.LoadTechnology(cfg.TechnologyPath)
}

// loadOptionalHistory loads the historical series when one was configured.
func loadOptionalHistory(cfg *contract.Config) ([]schema.HistoricalDataPoint, error) {
	if cfg.HistoryPath == "" {
		return nil, nil
	}
	return contract.LoadHistory(cfg.HistoryPath)
}

// getResultStore unwraps the result cache from the manager, tolerating a nil
// manager so commands work with persistence disabled.
func getResultStore(mgr contract.StoreManager) contract.CacheStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetResultStore()
}

// beginRun opens a run-tracking record when a run store is wired. A zero
// runID with a nil store means tracking is disabled.
func beginRun(mgr contract.StoreManager, start time.Time, params map[string]any) (contract.RunStore, int64) {
	if mgr == nil {
		return nil, 0
	}
	rs := mgr.GetRunStore()
	if rs == nil {
		return nil, 0
	}
	runID, err := rs.BeginRun(start, params)
	if err != nil {
		contract.LogWarn("starting run tracking", err)
		return nil, 0
	}
	return rs, runID
}

// endRun closes a run-tracking record, warning instead of failing the run.
func endRun(rs contract.RunStore, runID int64, technologies int) {
	if rs == nil {
		return
	}
	if err := rs.EndRun(runID, time.Now(), technologies); err != nil {
		contract.LogWarn("ending run tracking", err)
	}
}

// executeAnalyze runs the full four-part analysis with result caching and run
// tracking around the pure engine call.
func executeAnalyze(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	tech, err := requireTechnology(cfg)
	if err != nil {
		return err
	}

	// Serve from the result cache when a fresh entry exists.
	store := getResultStore(mgr)
	key := iostore.BuildAnalysisKey(tech, cfg.Industry, cfg.CurrentSkills)
	analysis, cached := iostore.LookupAnalysis(store, key, iostore.DefaultCacheMaxAge, time.Now())
	if !cached {
		analysis, err = core.NewEngine().AnalyzeEmergingTechnology(tech, cfg.CurrentSkills, cfg.Industry)
		if err != nil {
			return err
		}
		if err := iostore.StoreAnalysis(store, key, analysis, time.Now()); err != nil {
			contract.LogWarn("caching analysis", err)
		}
	}

	rs, runID := beginRun(mgr, start, map[string]any{
		"command":  "analyze",
		"industry": cfg.Industry,
		"skills":   len(cfg.CurrentSkills),
		"cached":   cached,
	})
	if rs != nil {
		record := schema.ScoreRecord{
			AnalysisTime:          time.Now(),
			Industry:              cfg.Industry,
			AutomationRisk:        analysis.JobImpact.AutomationRisk,
			AugmentationPotential: analysis.JobImpact.AugmentationPotential,
			SkillGapSeverity:      analysis.SkillGaps.GapSeverity,
			ReadinessScore:        analysis.Readiness.OverallScore,
			TimelineMonths:        analysis.Timeline.TotalMonths,
			Confidence:            analysis.Timeline.ConfidenceLevel,
		}
		if err := rs.RecordScores(runID, tech.ID, record); err != nil {
			contract.LogWarn("recording scores", err)
		}
		endRun(rs, runID, 1)
	}

	return outwriter.NewOutWriter().WriteAnalysis(analysis, cfg, time.Since(start))
}

// executeProject projects automation potential over the configured horizon.
func executeProject(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	tech, err := requireTechnology(cfg)
	if err != nil {
		return err
	}
	historical, err := loadOptionalHistory(cfg)
	if err != nil {
		return err
	}

	projections, err := core.NewTimeBasedProjector().CalculateTimeBasedAPO(cfg.BaseScore, tech, cfg.ProjectionYears, historical)
	if err != nil {
		return err
	}

	rs, runID := beginRun(mgr, start, map[string]any{
		"command":    "project",
		"years":      cfg.ProjectionYears,
		"base_score": cfg.BaseScore,
		"history":    len(historical),
	})
	if rs != nil {
		now := time.Now()
		for _, p := range projections {
			record := schema.ProjectionRecord{
				AnalysisTime: now,
				Year:         p.Year,
				Score:        p.Score,
				Confidence:   p.Confidence,
			}
			if err := rs.RecordProjection(runID, tech.ID, record); err != nil {
				contract.LogWarn("recording projection", err)
			}
		}
		endRun(rs, runID, 1)
	}

	return outwriter.NewOutWriter().WriteProjections(tech.Name, projections, cfg, time.Since(start))
}

// executeImpact projects short/medium/long-term impact metrics.
func executeImpact(cfg *contract.Config) error {
	tech, err := requireTechnology(cfg)
	if err != nil {
		return err
	}

	var industryData *schema.IndustryImpact
	if cfg.Industry != "" {
		industryData = tech.IndustryImpactFor(cfg.Industry)
	}

	metrics, err := core.NewTimeBasedProjector().ProjectTechnologyImpact(tech, cfg.ProjectionYears, industryData)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteImpact(tech.Name, metrics, cfg)
}

// executeMaturity assesses the technology's lifecycle stage.
func executeMaturity(cfg *contract.Config) error {
	tech, err := requireTechnology(cfg)
	if err != nil {
		return err
	}

	assessment, err := core.NewTimeBasedProjector().AssessTechnologyMaturity(tech, cfg.ProjectionYears)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteMaturity(tech.Name, assessment, cfg)
}

// executeConfidence scores prediction confidence for the configured horizon.
func executeConfidence(cfg *contract.Config) error {
	tech, err := requireTechnology(cfg)
	if err != nil {
		return err
	}
	historical, err := loadOptionalHistory(cfg)
	if err != nil {
		return err
	}

	scorer := core.NewConfidenceScorerWithWeights(cfg.ConfidenceWeights)
	score, err := scorer.CalculateConfidence(tech, cfg.ProjectionYears, len(historical))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteConfidence(tech.Name, score, cfg)
}

// executeCorrelate analyzes how historical factors track the automation
// score inside the trailing timeframe window.
func executeCorrelate(cfg *contract.Config) error {
	start := time.Now()
	tech, err := requireTechnology(cfg)
	if err != nil {
		return err
	}
	if cfg.HistoryPath == "" {
		return fmt.Errorf("--history-file is required for correlation analysis")
	}
	historical, err := contract.LoadHistory(cfg.HistoryPath)
	if err != nil {
		return err
	}

	engine := core.NewHistoricalCorrelationEngine()
	for _, point := range historical {
		engine.AddDataPoint(point)
	}
	result := engine.AnalyzeCorrelation(tech, cfg.Timeframe)

	return outwriter.NewOutWriter().WriteCorrelation(tech.Name, result, cfg, time.Since(start))
}

// executeComplexity scores an occupation profile against the configured
// keyword vocabulary.
func executeComplexity(occupationPath string, cfg *contract.Config) error {
	if occupationPath == "" {
		return fmt.Errorf("--occupation-file is required for complexity scoring")
	}
	profile, err := contract.LoadOccupation(occupationPath)
	if err != nil {
		return err
	}
	vocab, err := contract.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return err
	}

	scorer := core.NewComplexityScorer(vocab)
	factors := scorer.CalculateComplexity(profile.Task, profile.Skills, profile.Technologies, profile.Responsibilities)

	return outwriter.NewOutWriter().WriteComplexity(profile.Name, factors, cfg)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/apolabs/autoscope/core"
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/internal/iostore"
	"github.com/apolabs/autoscope/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// resultStore returns the result cache store, or nil when no manager is wired.
func (h *toolHandler) resultStore() contract.CacheStore {
	if h.mgr == nil {
		return nil
	}
	return h.mgr.GetResultStore()
}

// loadTechnology resolves the tech_path argument into a validated record.
func loadTechnology(request mcp.CallToolRequest) (*schema.Technology, error) {
	techPath := request.GetString("tech_path", "")
	if techPath == "" {
		return nil, fmt.Errorf("tech_path is required")
	}
	return contract.LoadTechnology(techPath)
}

func (h *toolHandler) handleAnalyzeTechnology(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	tech, err := loadTechnology(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid technology record: %v", err)), nil
	}
	if industry := request.GetString("industry", ""); industry != "" {
		cfg.Industry = industry
	}
	if skills := request.GetString("skills", ""); skills != "" {
		cfg.CurrentSkills = nil
		for _, s := range strings.Split(skills, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				cfg.CurrentSkills = append(cfg.CurrentSkills, trimmed)
			}
		}
	}

	// Serve from the result cache when a fresh entry exists.
	store := h.resultStore()
	key := iostore.BuildAnalysisKey(tech, cfg.Industry, cfg.CurrentSkills)
	analysis, ok := iostore.LookupAnalysis(store, key, iostore.DefaultCacheMaxAge, time.Now())
	if !ok {
		analysis, err = core.NewEngine().AnalyzeEmergingTechnology(tech, cfg.CurrentSkills, cfg.Industry)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		if err := iostore.StoreAnalysis(store, key, analysis, time.Now()); err != nil {
			contract.LogWarn("caching analysis", err)
		}
	}

	jsonData, _ := json.MarshalIndent(analysis, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleProjectAPO(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	tech, err := loadTechnology(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid technology record: %v", err)), nil
	}

	years := request.GetInt("years", contract.DefaultProjectionYears)
	if years < 1 || years > contract.MaxProjectionYears {
		return mcp.NewToolResultError(fmt.Sprintf("years must be between 1 and %d", contract.MaxProjectionYears)), nil
	}

	baseScore := request.GetFloat("base_score", cfg.BaseScore)
	if baseScore < 0 || baseScore > 1 {
		return mcp.NewToolResultError("base_score must be between 0.0 and 1.0"), nil
	}

	var historical []schema.HistoricalDataPoint
	if historyPath := request.GetString("history_path", ""); historyPath != "" {
		historical, err = contract.LoadHistory(historyPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid history file: %v", err)), nil
		}
	}

	projections, err := core.NewTimeBasedProjector().CalculateTimeBasedAPO(baseScore, tech, years, historical)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("projection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(projections, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAssessMaturity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tech, err := loadTechnology(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid technology record: %v", err)), nil
	}

	years := request.GetInt("years", contract.DefaultProjectionYears)
	if years < 1 || years > contract.MaxProjectionYears {
		return mcp.NewToolResultError(fmt.Sprintf("years must be between 1 and %d", contract.MaxProjectionYears)), nil
	}

	assessment, err := core.NewTimeBasedProjector().AssessTechnologyMaturity(tech, years)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("maturity assessment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(assessment, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreConfidence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tech, err := loadTechnology(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid technology record: %v", err)), nil
	}

	years := request.GetInt("years", contract.DefaultProjectionYears)
	if years < 1 || years > contract.MaxProjectionYears {
		return mcp.NewToolResultError(fmt.Sprintf("years must be between 1 and %d", contract.MaxProjectionYears)), nil
	}

	points := request.GetInt("historical_points", 0)
	if points < 0 {
		return mcp.NewToolResultError("historical_points must not be negative"), nil
	}

	scorer := core.NewConfidenceScorerWithWeights(h.baseCfg.ConfidenceWeights)
	score, err := scorer.CalculateConfidence(tech, years, points)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("confidence scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(score, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

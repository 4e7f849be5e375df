// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/apolabs/autoscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Autoscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Autoscope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_technology ---
	s.AddTool(mcp.NewTool("analyze_technology",
		mcp.WithDescription("Analyze an emerging technology's automation risk, skill gaps, readiness and rollout timeline for an industry."),
		mcp.WithString("tech_path", mcp.Description("Path to the technology record JSON file."), mcp.Required()),
		mcp.WithString("industry", mcp.Description("Industry context for the analysis (defaults to the configured industry).")),
		mcp.WithString("skills", mcp.Description("Comma-separated list of currently available skills.")),
	), h.handleAnalyzeTechnology)

	// --- 2. Tool: project_apo ---
	s.AddTool(mcp.NewTool("project_apo",
		mcp.WithDescription("Project a technology's automation potential over a number of future years."),
		mcp.WithString("tech_path", mcp.Description("Path to the technology record JSON file."), mcp.Required()),
		mcp.WithNumber("years", mcp.Description("Number of years to project (1-30). Defaults to 5.")),
		mcp.WithNumber("base_score", mcp.Description("Starting automation potential (0-1).")),
		mcp.WithString("history_path", mcp.Description("Path to a historical data points JSON file.")),
	), h.handleProjectAPO)

	// --- 3. Tool: assess_maturity ---
	s.AddTool(mcp.NewTool("assess_maturity",
		mcp.WithDescription("Assess a technology's lifecycle maturity and project its level forward."),
		mcp.WithString("tech_path", mcp.Description("Path to the technology record JSON file."), mcp.Required()),
		mcp.WithNumber("years", mcp.Description("Years to project the maturity forward. Defaults to 5.")),
	), h.handleAssessMaturity)

	// --- 4. Tool: score_confidence ---
	s.AddTool(mcp.NewTool("score_confidence",
		mcp.WithDescription("Score the confidence and reliability of a prediction for a technology."),
		mcp.WithString("tech_path", mcp.Description("Path to the technology record JSON file."), mcp.Required()),
		mcp.WithNumber("years", mcp.Description("Prediction horizon in years. Defaults to 5.")),
		mcp.WithNumber("historical_points", mcp.Description("Number of historical observations backing the prediction.")),
	), h.handleScoreConfidence)

	return s
}

// StartMCPServer starts the Autoscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

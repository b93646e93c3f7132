// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Habitsense MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HabitStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Habitsense Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_timing_pattern ---
	s.AddTool(mcp.NewTool("get_timing_pattern",
		mcp.WithDescription("Analyze a habit's completion history to find its optimal hours, weekday pattern and difficult days."),
		mcp.WithString("habit_id", mcp.Description("ID of the habit to analyze."), mcp.Required()),
		mcp.WithNumber("lookback", mcp.Description("History window in days. Defaults to the configured lookback.")),
	), h.handleGetTimingPattern)

	// --- 2. Tool: predict_streak_risk ---
	s.AddTool(mcp.NewTool("predict_streak_risk",
		mcp.WithDescription("Assess how likely a habit's current streak is to break, with risk and strength factors."),
		mcp.WithString("habit_id", mcp.Description("ID of the habit to assess."), mcp.Required()),
	), h.handlePredictStreakRisk)

	// --- 3. Tool: get_correlations ---
	s.AddTool(mcp.NewTool("get_correlations",
		mcp.WithDescription("Detect completion correlations between habit pairs across their date-joined histories."),
		mcp.WithNumber("lookback", mcp.Description("History window in days. Defaults to the configured lookback.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of correlation pairs returned.")),
	), h.handleGetCorrelations)

	// --- 4. Tool: get_smart_insights ---
	s.AddTool(mcp.NewTool("get_smart_insights",
		mcp.WithDescription("Synthesize prioritized insights, a personalized tip and a motivational message for one habit."),
		mcp.WithString("habit_id", mcp.Description("ID of the habit to synthesize insights for."), mcp.Required()),
	), h.handleGetSmartInsights)

	// --- 5. Tool: rank_next_actions ---
	s.AddTool(mcp.NewTool("rank_next_actions",
		mcp.WithDescription("Rank the incomplete habits by what is most worth doing right now."),
		mcp.WithString("exclude", mcp.Description("Comma-separated habit IDs to exclude from ranking.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked habits returned.")),
	), h.handleRankNextActions)

	return s
}

// StartMCPServer starts the Habitsense MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HabitStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}

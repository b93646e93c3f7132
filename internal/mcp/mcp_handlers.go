package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HabitStore
}

func (h *toolHandler) handleGetTimingPattern(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	habitID := request.GetString("habit_id", "")
	if habitID == "" {
		return mcp.NewToolResultError("habit_id is required"), nil
	}
	if l := request.GetInt("lookback", 0); l > 0 {
		cfg.LookbackDays = l
	}

	pattern, err := core.GetTimingPattern(cfg, h.store, habitID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(pattern, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePredictStreakRisk(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	habitID := request.GetString("habit_id", "")
	if habitID == "" {
		return mcp.NewToolResultError("habit_id is required"), nil
	}

	prediction, err := core.GetStreakPrediction(cfg, h.store, habitID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("risk assessment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(prediction, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCorrelations(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("lookback", 0); l > 0 {
		cfg.LookbackDays = l
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	insights, err := core.GetCorrelationInsights(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("correlation analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(insights, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSmartInsights(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	habitID := request.GetString("habit_id", "")
	if habitID == "" {
		return mcp.NewToolResultError("habit_id is required"), nil
	}

	insights, err := core.GetSmartInsights(cfg, h.store, habitID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("insight synthesis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(insights, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankNextActions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if e := request.GetString("exclude", ""); e != "" {
		cfg.ExcludeIDs = nil
		for _, p := range strings.Split(e, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.ExcludeIDs = append(cfg.ExcludeIDs, trimmed)
			}
		}
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetNextActions(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

package mcp_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	mcp_internal "github.com/Zak-aden1/ai-journal-sub003/internal/mcp"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves one habit with a short deterministic history.
type fakeStore struct{}

func (fakeStore) GetCompletionHistory(habitID string, daysBack int) ([]schema.CompletionRecord, error) {
	if habitID != "meditate" {
		return nil, nil
	}
	var records []schema.CompletionRecord
	start := schema.DayOf(time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC))
	for i := daysBack; i > 0; i-- {
		records = append(records, schema.CompletionRecord{
			Day:       start.AddDate(0, 0, -i),
			Completed: true,
			Planned:   true,
		})
	}
	return records, nil
}

func (fakeStore) GetStreakState(string) (schema.StreakState, error) {
	return schema.StreakState{Current: 4, Longest: 9}, nil
}

func (fakeStore) ListHabits() ([]schema.Habit, error) {
	return []schema.Habit{{ID: "meditate", Title: "Meditate", Difficulty: schema.EasyDifficulty, TimeType: schema.MorningTime}}, nil
}

func (fakeStore) GetHabit(id string) (schema.Habit, error) {
	if id != "meditate" {
		return schema.Habit{}, errors.New("habit not found: " + id)
	}
	return schema.Habit{ID: "meditate", Title: "Meditate", Difficulty: schema.EasyDifficulty, TimeType: schema.MorningTime}, nil
}

func (fakeStore) UpsertHabit(schema.Habit) error                          { return nil }
func (fakeStore) LogCompletion(string, schema.CompletionRecord) error     { return nil }
func (fakeStore) GetStatus() (schema.StoreStatus, error)                  { return schema.StoreStatus{}, nil }
func (fakeStore) Clear() error                                            { return nil }
func (fakeStore) Close() error                                            { return nil }

func testBaseConfig() *contract.Config {
	return &contract.Config{
		Now:          time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		LookbackDays: contract.DefaultLookbackDays,
		ResultLimit:  contract.DefaultResultLimit,
		Workers:      2,
		Precision:    2,
		Output:       schema.TextOut,
	}
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := mcp_internal.NewMCPServer(testBaseConfig(), fakeStore{})

	t.Run("get_timing_pattern missing habit_id", func(t *testing.T) {
		res := callTool(t, s, "get_timing_pattern", map[string]any{})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "habit_id is required")
	})

	t.Run("predict_streak_risk unknown habit", func(t *testing.T) {
		res := callTool(t, s, "predict_streak_risk", map[string]any{"habit_id": "nope"})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "habit not found")
	})

	t.Run("get_smart_insights missing habit_id", func(t *testing.T) {
		res := callTool(t, s, "get_smart_insights", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "habit_id is required")
	})
}

func TestMCPServerHandlers_Success(t *testing.T) {
	s := mcp_internal.NewMCPServer(testBaseConfig(), fakeStore{})

	t.Run("get_timing_pattern returns JSON", func(t *testing.T) {
		res := callTool(t, s, "get_timing_pattern", map[string]any{"habit_id": "meditate"})
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"habit_id": "meditate"`)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"completion_rate": 1`)
	})

	t.Run("predict_streak_risk returns JSON", func(t *testing.T) {
		res := callTool(t, s, "predict_streak_risk", map[string]any{"habit_id": "meditate"})
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"confidence_score"`)
	})

	t.Run("get_correlations with one habit is empty", func(t *testing.T) {
		res := callTool(t, s, "get_correlations", map[string]any{})
		require.False(t, res.IsError)
		assert.Equal(t, "[]", res.Content[0].(mcp.TextContent).Text)
	})

	t.Run("rank_next_actions honors exclude", func(t *testing.T) {
		res := callTool(t, s, "rank_next_actions", map[string]any{"exclude": "meditate"})
		require.False(t, res.IsError)
		assert.Equal(t, "[]", res.Content[0].(mcp.TextContent).Text)
	})

	t.Run("rank_next_actions returns the habit", func(t *testing.T) {
		res := callTool(t, s, "rank_next_actions", map[string]any{})
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"id": "meditate"`)
	})

	t.Run("get_smart_insights returns a bundle", func(t *testing.T) {
		res := callTool(t, s, "get_smart_insights", map[string]any{"habit_id": "meditate"})
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"personalized_tip"`)
	})
}

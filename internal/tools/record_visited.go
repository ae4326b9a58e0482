package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"globalnav/internal/navigator"
	"globalnav/internal/results"
	"globalnav/pkg/types"
)

// RecordVisitedTool handles history push requests
type RecordVisitedTool struct {
	nav *navigator.Navigator
}

// NewRecordVisitedTool creates a new record visited tool
func NewRecordVisitedTool(nav *navigator.Navigator) *RecordVisitedTool {
	return &RecordVisitedTool{nav: nav}
}

// GetTool returns the MCP tool definition
func (t *RecordVisitedTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolRecordVisited,
		mcp.WithDescription("Record a visited position on the jump history before navigating away"),
		mcp.WithString("file", mcp.Required(), mcp.Description("File of the position being left")),
		mcp.WithNumber("line", mcp.Required(), mcp.Description("Zero-based line of the position")),
		mcp.WithNumber("column", mcp.Description("Zero-based column of the position")),
		mcp.WithString("pane", mcp.Description("Optional pane hint: active or beside")),
	)
}

// Handle processes the tool request
func (t *RecordVisitedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file := mcp.ParseString(req, "file", "")
	if file == "" {
		return mcp.NewToolResultError("file parameter is required"), nil
	}
	line := int(mcp.ParseFloat64(req, "line", 0))
	column := int(mcp.ParseFloat64(req, "column", 0))
	if line < 0 || column < 0 {
		return mcp.NewToolResultError("line and column must be non-negative"), nil
	}

	pane := types.PaneUnspecified
	switch mcp.ParseString(req, "pane", "") {
	case "active":
		pane = types.PaneActive
	case "beside":
		pane = types.PaneBeside
	}

	pos := types.Position{File: file, Line: line, Column: column, Pane: pane}
	t.nav.RecordVisited(pos)

	toolResult := results.RecordVisitedToolResult{
		Message:  fmt.Sprintf("Recorded %s:%d.", pos.File, pos.Line+1),
		Position: pos,
		Depth:    t.nav.HistoryLen(),
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

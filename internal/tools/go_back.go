package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"globalnav/internal/navigator"
	"globalnav/internal/results"
)

// GoBackTool handles back-navigation requests
type GoBackTool struct {
	nav *navigator.Navigator
}

// NewGoBackTool creates a new go back tool
func NewGoBackTool(nav *navigator.Navigator) *GoBackTool {
	return &GoBackTool{nav: nav}
}

// GetTool returns the MCP tool definition
func (t *GoBackTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGoBack,
		mcp.WithDescription("Return the most recently visited position from the jump history"),
	)
}

// Handle processes the tool request
func (t *GoBackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.GoBackToolResult{}

	if pos, ok := t.nav.GoBack(); ok {
		toolResult.Message = fmt.Sprintf("Returning to %s:%d.", pos.File, pos.Line+1)
		toolResult.Position = &pos
	} else {
		toolResult.Message = "Jump history is empty; nowhere to go back to."
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"globalnav/internal/navigator"
	"globalnav/internal/results"
	"globalnav/internal/session"
	"globalnav/pkg/types"
)

// FindDefinitionTool handles find definition requests
type FindDefinitionTool struct {
	nav           *navigator.Navigator
	docs          *session.DocumentCache
	workspaceRoot string
}

// NewFindDefinitionTool creates a new find definition tool
func NewFindDefinitionTool(nav *navigator.Navigator, docs *session.DocumentCache, workspaceRoot string) *FindDefinitionTool {
	return &FindDefinitionTool{
		nav:           nav,
		docs:          docs,
		workspaceRoot: workspaceRoot,
	}
}

// GetTool returns the MCP tool definition
func (t *FindDefinitionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFindDefinition,
		mcp.WithDescription("Find where a symbol is defined, using the GNU GLOBAL tag database "+
			"with a heuristic in-file fallback when the database is unavailable or inconclusive"),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Symbol name to find the definition for")),
		mcp.WithString("file", mcp.Description("File the cursor is in, used to narrow the fallback search")),
		mcp.WithNumber("line", mcp.Description("Zero-based cursor line within the file")),
	)
}

// Handle processes the tool request
func (t *FindDefinitionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := mcp.ParseString(req, "symbol", "")
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}
	file := mcp.ParseString(req, "file", "")
	cursorLine := int(mcp.ParseFloat64(req, "line", 0))

	var snapshot types.Snapshot
	if file != "" {
		snap, err := t.docs.Snapshot(resolvePath(file, t.workspaceRoot))
		if err != nil {
			// The fallback just loses its scope narrowing; the tag
			// database lookup proceeds regardless.
			slog.Debug("Could not snapshot document for fallback", "file", file, "error", err)
		} else {
			snapshot = snap
		}
	}

	toolResult := results.FindDefinitionToolResult{
		Arguments: results.FindDefinitionToolArgs{Symbol: symbol, File: file, Line: cursorLine},
	}

	candidates, source, err := t.nav.FindDefinition(ctx, symbol, snapshot, cursorLine)
	switch {
	case errors.Is(err, navigator.ErrNoDefinition):
		toolResult.Message = fmt.Sprintf("No definition found for '%s'. "+
			"The tag database and the local fallback search both came up empty.", symbol)
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find definition: %v", err)), nil
	default:
		toolResult.Message = fmt.Sprintf("Found %d definition candidate(s).", len(candidates))
		toolResult.Source = source
		toolResult.Candidates = candidates
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

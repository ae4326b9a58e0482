package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"globalnav/internal/navigator"
	"globalnav/internal/results"
)

// FindReferencesTool handles find references requests
type FindReferencesTool struct {
	nav *navigator.Navigator
}

// NewFindReferencesTool creates a new find references tool
func NewFindReferencesTool(nav *navigator.Navigator) *FindReferencesTool {
	return &FindReferencesTool{nav: nav}
}

// GetTool returns the MCP tool definition
func (t *FindReferencesTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFindReferences,
		mcp.WithDescription("Find where a symbol is referenced, using the GNU GLOBAL tag database. "+
			"Reference lookups have no local fallback"),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Symbol name to find references for")),
	)
}

// Handle processes the tool request
func (t *FindReferencesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := mcp.ParseString(req, "symbol", "")
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	candidates, err := t.nav.FindReferences(ctx, symbol)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find references: %v", err)), nil
	}

	toolResult := results.FindReferencesToolResult{
		Arguments:  results.FindReferencesToolArgs{Symbol: symbol},
		Candidates: candidates,
	}
	if len(candidates) == 0 {
		toolResult.Message = fmt.Sprintf("No references found for '%s'.", symbol)
	} else {
		toolResult.Message = fmt.Sprintf("Found %d reference(s).", len(candidates))
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// Package tools implements the MCP tools exposed by the globalnav server.
package tools

import (
	"path/filepath"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "global."

// Tool names
const (
	ToolFindDefinition = ToolPrefix + "find_definition"
	ToolFindReferences = ToolPrefix + "find_references"
	ToolGoBack         = ToolPrefix + "go_back"
	ToolRecordVisited  = ToolPrefix + "record_visited"
)

// resolvePath anchors a relative file path at the workspace root.
func resolvePath(path, workspaceRoot string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspaceRoot, path)
}

package results

import "globalnav/pkg/types"

// GoBackToolResult represents the result of the go back tool
type GoBackToolResult struct {
	Message  string          `json:"message"`
	Position *types.Position `json:"position,omitempty"`
}

// RecordVisitedToolResult represents the result of the record visited tool
type RecordVisitedToolResult struct {
	Message  string         `json:"message"`
	Position types.Position `json:"position"`
	Depth    int            `json:"depth"`
}

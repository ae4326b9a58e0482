package types

// PaneHint suggests where the host editor should place an opened document.
type PaneHint int

const (
	PaneUnspecified PaneHint = iota
	PaneActive
	PaneBeside
)

// Position represents a visited location in a document.
// Positions are immutable once created.
type Position struct {
	File   string   `json:"file"`
	Line   int      `json:"line"`
	Column int      `json:"column"`
	Pane   PaneHint `json:"pane,omitempty"`
}

// Snapshot is an immutable view of a document's text at lookup time.
// The fallback search operates on the snapshot, never on live buffers,
// so concurrent lookups over the same document need no locking.
type Snapshot struct {
	Path  string
	Lines []string
}

// ScopeRange is an inclusive line range within a document.
type ScopeRange struct {
	Start int
	End   int
}

// Contains reports whether the zero-based line index falls inside the range.
func (r ScopeRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

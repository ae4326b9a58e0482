// Package results defines the typed records returned by navigation
// operations and serialized into tool responses.
package results

// Candidate is the uniform navigation target handed to the selection
// surface and the open-at-position step, regardless of whether it came
// from the tag database or the local fallback search.
type Candidate struct {
	// Label is the code snippet shown as the primary choice text.
	Label string `json:"label"`
	// Description locates the candidate for the user, e.g. "src/bar.c:42".
	Description string `json:"description"`
	File        string `json:"file"`
	// Line is zero-based.
	Line int `json:"line"`
}

// Source identifies which resolution path produced a candidate set.
type Source string

const (
	SourceTagDatabase Source = "tag-database"
	SourceFallback    Source = "fallback"
)

package results

// FindReferencesToolResult represents the result of the find references tool
type FindReferencesToolResult struct {
	Message    string                 `json:"message"`
	Arguments  FindReferencesToolArgs `json:"arguments"`
	Candidates []Candidate            `json:"candidates,omitempty"`
}

// FindReferencesToolArgs represents the arguments for the find references tool
type FindReferencesToolArgs struct {
	Symbol string `json:"symbol"`
}

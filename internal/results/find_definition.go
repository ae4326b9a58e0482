package results

// FindDefinitionToolResult represents the result of the find definition tool
type FindDefinitionToolResult struct {
	Message    string                 `json:"message"`
	Arguments  FindDefinitionToolArgs `json:"arguments"`
	Source     Source                 `json:"source,omitempty"`
	Candidates []Candidate            `json:"candidates,omitempty"`
}

// FindDefinitionToolArgs represents the arguments for the find definition tool
type FindDefinitionToolArgs struct {
	Symbol string `json:"symbol"`
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
}

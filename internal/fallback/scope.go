// Package fallback implements the local symbol-resolution heuristic used
// when the global(1) lookup fails or comes back empty. It is a best-effort
// text scan, deliberately language-agnostic, not a parser.
package fallback

import (
	"regexp"

	"globalnav/pkg/types"
)

// funcStartPattern loosely matches "identifier followed by a parenthesized
// parameter list" with no statement terminator on the line. Loose on purpose:
// it has to work across C, Java, JavaScript and friends.
var funcStartPattern = regexp.MustCompile(`^[^=;]*?\b([A-Za-z_][A-Za-z0-9_]*)\s*\([^;]*$`)

// controlKeywords are identifiers that look like a call but open a
// control-flow construct instead of a function body.
var controlKeywords = map[string]bool{
	"if":     true,
	"while":  true,
	"for":    true,
	"switch": true,
}

// FindEnclosingScope locates the function body around the cursor line.
//
// It scans upward from the cursor for the nearest line that looks like a
// function header, then balances braces forward from that line to find the
// end. If no closing brace balances the body, the scope extends to the last
// line. The second return value is false when no enclosing scope is found;
// callers should then search the whole document.
func FindEnclosingScope(lines []string, cursor int) (types.ScopeRange, bool) {
	if len(lines) == 0 {
		return types.ScopeRange{}, false
	}
	if cursor >= len(lines) {
		cursor = len(lines) - 1
	}
	if cursor < 0 {
		cursor = 0
	}

	start := -1
	for i := cursor; i >= 0; i-- {
		m := funcStartPattern.FindStringSubmatch(lines[i])
		if m == nil || controlKeywords[m[1]] {
			continue
		}
		start = i
		break
	}
	if start < 0 {
		return types.ScopeRange{}, false
	}

	end := len(lines) - 1
	depth := 0
	opened := false
scan:
	for i := start; i < len(lines); i++ {
		for _, ch := range lines[i] {
			switch ch {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
			}
			if opened && depth == 0 {
				end = i
				break scan
			}
		}
	}

	return types.ScopeRange{Start: start, End: end}, true
}

// WholeDocument returns a scope covering every line of the snapshot.
func WholeDocument(lines []string) types.ScopeRange {
	if len(lines) == 0 {
		return types.ScopeRange{}
	}
	return types.ScopeRange{Start: 0, End: len(lines) - 1}
}

package fallback

import (
	"regexp"
	"sort"
	"strings"

	"globalnav/pkg/types"
)

// Priority buckets for classified symbol occurrences.
// Lower values mean higher confidence that the line is the definition site.
const (
	PriorityParameter   = 1
	PriorityDeclaration = 2
	PriorityCall        = 3
	PriorityAssignment  = 5
	PriorityOutput      = 50
	PriorityUsage       = 100
)

// Match is one classified occurrence of a symbol within a line range.
type Match struct {
	Line     int    // zero-based line index
	Text     string // trimmed line content
	Priority int
	Label    string
}

// typeKeywords deliberately mixes type keywords from several source
// languages. The ranking is a cross-language best-effort heuristic and is
// expected to misclassify in places; keep it approximate.
var typeKeywords = []string{
	"int", "long", "short", "char", "float", "double",
	"unsigned", "signed", "bool", "size_t", "auto",
	"var", "let", "const", "string", "byte",
}

// outputKeywords mark lines that merely print or return the symbol.
var outputKeywords = []string{"printf", "print", "echo", "cout", "return"}

// commentOpeners start full-line comments that the search skips entirely.
var commentOpeners = []string{"//", "/*", "*", "#"}

// Searcher holds the per-symbol compiled patterns so repeated lookups for
// the same symbol do not recompile them.
type Searcher struct {
	symbol  string
	word    *regexp.Regexp
	param   *regexp.Regexp
	decl    *regexp.Regexp
	forDecl *regexp.Regexp
	assign  *regexp.Regexp
	call    *regexp.Regexp
}

// NewSearcher compiles the classification patterns for one symbol.
func NewSearcher(symbol string) *Searcher {
	q := regexp.QuoteMeta(symbol)
	return &Searcher{
		symbol: symbol,
		word:   regexp.MustCompile(`\b` + q + `\b`),
		// Another identifier token directly before the symbol, a comma or
		// closing paren directly after: a parameter declaration.
		param: regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*\s+[*&]*` + q + `\s*[,)]`),
		// A recognized type keyword before the symbol with no assignment or
		// terminator in between: a variable declaration.
		decl:    regexp.MustCompile(`\b(?:` + strings.Join(typeKeywords, "|") + `)\b[^=;]*[*&]?\b` + q + `\b`),
		forDecl: regexp.MustCompile(`\bfor\s*\(.*\b` + q + `\b`),
		assign:  regexp.MustCompile(`\b` + q + `\s*=(?:[^=]|$)`),
		call:    regexp.MustCompile(`\b` + q + `\s*\(`),
	}
}

// Search scans the line range for whole-word occurrences of the symbol,
// classifies each occurrence, and returns only the matches sharing the best
// (lowest) priority, in document order. Ties are not broken further. An
// empty result means no occurrence was found; it is not an error.
//
// Search never mutates its inputs and is deterministic for identical input.
func (s *Searcher) Search(lines []string, scope types.ScopeRange) []Match {
	if len(lines) == 0 {
		return nil
	}
	if scope.Start < 0 {
		scope.Start = 0
	}
	if scope.End >= len(lines) {
		scope.End = len(lines) - 1
	}

	var all []Match
	for i := scope.Start; i <= scope.End; i++ {
		line := lines[i]
		if isCommentLine(line) || !s.word.MatchString(line) {
			continue
		}
		priority, label := s.classify(line)
		all = append(all, Match{
			Line:     i,
			Text:     strings.TrimSpace(line),
			Priority: priority,
			Label:    label,
		})
	}
	if len(all) == 0 {
		return nil
	}

	sort.SliceStable(all, func(a, b int) bool { return all[a].Priority < all[b].Priority })

	best := all[0].Priority
	cut := len(all)
	for i, m := range all {
		if m.Priority != best {
			cut = i
			break
		}
	}
	return all[:cut]
}

// classify assigns a line to exactly one priority bucket. The checks run in
// a fixed order and the first hit wins; the order is part of the contract.
func (s *Searcher) classify(line string) (int, string) {
	switch {
	case s.param.MatchString(line):
		return PriorityParameter, "parameter"
	case s.decl.MatchString(line) || s.forDecl.MatchString(line):
		return PriorityDeclaration, "declaration"
	case s.assign.MatchString(line):
		return PriorityAssignment, "assignment"
	case s.call.MatchString(line):
		return PriorityCall, "call or definition"
	case containsAny(line, outputKeywords):
		return PriorityOutput, "output"
	default:
		return PriorityUsage, "usage"
	}
}

func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, open := range commentOpeners {
		if strings.HasPrefix(trimmed, open) {
			return true
		}
	}
	return false
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// Package navigator orchestrates symbol lookups: the global(1) tag
// database first, the local heuristic fallback second, with jump history
// for back-navigation.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"globalnav/internal/fallback"
	"globalnav/internal/global"
	"globalnav/internal/history"
	"globalnav/internal/results"
	"globalnav/internal/session"
	"globalnav/pkg/types"
)

// ErrNoDefinition is returned when both the tag database and the local
// fallback come up empty. It is a user-visible condition, not a fault.
var ErrNoDefinition = errors.New("no definition found")

// TagClient is the slice of the global client the navigator depends on.
type TagClient interface {
	Definitions(ctx context.Context, symbol string) ([]global.XRef, error)
	References(ctx context.Context, symbol string) ([]global.XRef, error)
}

// Navigator resolves symbols and tracks visited positions. Lookups are
// pure over their snapshot inputs; the history stack is the only mutable
// state and guards itself.
type Navigator struct {
	client  TagClient
	configs *session.ConfigCache
	history *history.Stack
}

// New creates a navigator. History capacity is taken from the current
// configuration.
func New(client TagClient, configs *session.ConfigCache) *Navigator {
	return &Navigator{
		client:  client,
		configs: configs,
		history: history.NewStack(configs.Current().History.Capacity),
	}
}

// FindDefinition resolves symbol to a list of candidate definition sites.
//
// The tag database is consulted first. The local fallback runs only when
// the external invocation fails or yields no usable rows; the first
// non-empty source wins and result sets are never merged. Both sources
// empty yields ErrNoDefinition.
func (n *Navigator) FindDefinition(ctx context.Context, symbol string, doc types.Snapshot, cursorLine int) ([]results.Candidate, results.Source, error) {
	if symbol == "" {
		return nil, "", errors.New("symbol must not be empty")
	}

	start := time.Now()
	source := results.SourceTagDatabase
	candidates := n.externalDefinitions(ctx, symbol)
	if len(candidates) == 0 {
		source = results.SourceFallback
		candidates = n.localFallback(symbol, doc, cursorLine)
	}

	if n.configs.Current().Results.ShowElapsed {
		slog.Info("Definition lookup finished",
			"symbol", symbol, "source", source,
			"candidates", len(candidates), "elapsed", time.Since(start))
	}

	if len(candidates) == 0 {
		return nil, source, ErrNoDefinition
	}
	return candidates, source, nil
}

// FindReferences resolves symbol to its reference sites. This is a thin
// pass-through to the tag database; there is no local fallback for
// references, so invocation errors surface to the caller.
func (n *Navigator) FindReferences(ctx context.Context, symbol string) ([]results.Candidate, error) {
	if symbol == "" {
		return nil, errors.New("symbol must not be empty")
	}

	refs, err := n.client.References(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("reference lookup failed: %w", err)
	}
	return candidatesFromXRefs(refs), nil
}

// RecordVisited pushes a position onto the jump history.
func (n *Navigator) RecordVisited(pos types.Position) {
	n.history.Push(pos)
}

// GoBack pops the most recent visited position. The second return value is
// false when the history is empty, an informational condition.
func (n *Navigator) GoBack() (types.Position, bool) {
	return n.history.Pop()
}

// HistoryLen returns the current jump history depth.
func (n *Navigator) HistoryLen() int {
	return n.history.Len()
}

func (n *Navigator) externalDefinitions(ctx context.Context, symbol string) []results.Candidate {
	refs, err := n.client.Definitions(ctx, symbol)
	if err != nil {
		// Recovered by the fallback; never surfaced on its own.
		slog.Debug("Tag database lookup failed, trying local fallback", "symbol", symbol, "error", err)
		return nil
	}
	return candidatesFromXRefs(refs)
}

// localFallback runs the scope-narrowed heuristic search over the document
// snapshot. When the enclosing scope yields nothing, the whole document is
// searched before giving up.
func (n *Navigator) localFallback(symbol string, doc types.Snapshot, cursorLine int) []results.Candidate {
	if len(doc.Lines) == 0 {
		return nil
	}

	searcher := fallback.NewSearcher(symbol)

	scope, scoped := fallback.FindEnclosingScope(doc.Lines, cursorLine)
	if !scoped {
		scope = fallback.WholeDocument(doc.Lines)
	}

	matches := searcher.Search(doc.Lines, scope)
	if len(matches) == 0 && scoped {
		matches = searcher.Search(doc.Lines, fallback.WholeDocument(doc.Lines))
	}

	candidates := make([]results.Candidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, results.Candidate{
			Label:       m.Text,
			Description: fmt.Sprintf("%s:%d (%s)", doc.Path, m.Line+1, m.Label),
			File:        doc.Path,
			Line:        m.Line,
		})
	}
	return candidates
}

func candidatesFromXRefs(refs []global.XRef) []results.Candidate {
	candidates := make([]results.Candidate, 0, len(refs))
	for _, ref := range refs {
		candidates = append(candidates, results.Candidate{
			Label:       strings.TrimSpace(ref.Code),
			Description: fmt.Sprintf("%s:%d", ref.File, ref.Line+1),
			File:        ref.File,
			Line:        ref.Line,
		})
	}
	return candidates
}

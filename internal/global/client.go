package global

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"globalnav/pkg/types"
)

const defaultGlobalPath = "global"

// XRef is one parsed row of `global -x` output: SYMBOL LINENO FILE CODE.
// Line is converted to a zero-based index at parse time.
type XRef struct {
	Symbol string
	Line   int
	File   string
	Code   string
}

// xrefPattern matches the cscope-style xref row shape. Rows that do not
// match are malformed and dropped without escalating.
var xrefPattern = regexp.MustCompile(`^(\S+)\s+(\d+)\s+(\S+)\s+(.*)$`)

// numericPattern flags degenerate rows whose file field is purely numeric,
// which indicates a misaligned parse rather than a real path.
var numericPattern = regexp.MustCompile(`^\d+$`)

// Client queries the global(1) tag database for a workspace.
type Client struct {
	globalPath string
	workDir    string
	runner     types.Runner
}

// NewClient creates a client rooted at workDir. An empty globalPath falls
// back to looking up "global" on PATH.
func NewClient(globalPath, workDir string, runner types.Runner) *Client {
	if globalPath == "" {
		globalPath = defaultGlobalPath
	}
	return &Client{
		globalPath: globalPath,
		workDir:    workDir,
		runner:     runner,
	}
}

// Definitions asks the tag database where symbol is defined.
func (c *Client) Definitions(ctx context.Context, symbol string) ([]XRef, error) {
	return c.query(ctx, symbol, "-x")
}

// References asks the tag database where symbol is referenced.
func (c *Client) References(ctx context.Context, symbol string) ([]XRef, error) {
	return c.query(ctx, symbol, "-rx")
}

// Available reports whether the global executable can be invoked at all.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.runner.Run(ctx, c.workDir, c.globalPath, "--version")
	return err == nil
}

func (c *Client) query(ctx context.Context, symbol string, mode string) ([]XRef, error) {
	slog.Debug("Querying global", "mode", mode, "symbol", symbol, "work_dir", c.workDir)

	out, err := c.runner.Run(ctx, c.workDir, c.globalPath, mode, symbol)
	if err != nil {
		return nil, err
	}

	refs := ParseXRefs(out)
	slog.Debug("Parsed global output", "symbol", symbol, "rows", len(refs))
	return refs, nil
}

// ParseXRefs parses line-oriented xref output. Malformed rows and rows with
// a purely numeric file field are silently discarded.
func ParseXRefs(out string) []XRef {
	var refs []XRef
	for _, line := range strings.Split(out, "\n") {
		if ref, ok := parseXRefLine(line); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func parseXRefLine(line string) (XRef, bool) {
	m := xrefPattern.FindStringSubmatch(line)
	if m == nil {
		return XRef{}, false
	}
	if numericPattern.MatchString(m[3]) {
		return XRef{}, false
	}
	lineNo, err := strconv.Atoi(m[2])
	if err != nil || lineNo < 1 {
		return XRef{}, false
	}
	return XRef{
		Symbol: m[1],
		Line:   lineNo - 1, // xref rows are 1-indexed
		File:   m[3],
		Code:   strings.TrimSpace(m[4]),
	}, true
}

// Package global invokes the GNU GLOBAL command-line tool and parses its
// line-oriented xref output.
package global

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"globalnav/pkg/types"
)

var _ types.Runner = ExecRunner{}

// ExecRunner runs commands through os/exec, blocking until completion.
// The process inherits no stdin; stdout is returned and stderr is folded
// into the error on failure.
type ExecRunner struct{}

// Run executes the command in workDir and returns its standard output.
func (ExecRunner) Run(ctx context.Context, workDir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return stdout.String(), nil
}

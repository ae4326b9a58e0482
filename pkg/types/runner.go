package types

import "context"

// Runner executes an external command and captures its standard output.
// An error is returned for non-zero exits with the captured stderr attached.
type Runner interface {
	Run(ctx context.Context, workDir string, name string, args ...string) (string, error)
}

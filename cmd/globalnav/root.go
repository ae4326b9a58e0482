package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"globalnav/pkg/project"
)

var (
	// workspaceFlag is the CLI --workspace flag value
	workspaceFlag string
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "globalnav",
	Short: "globalnav - symbol navigation over GNU GLOBAL",
	Long: `globalnav answers "where is this symbol defined/referenced" by querying a
GNU GLOBAL (gtags) tag database, with a heuristic in-file fallback search for
workspaces where the database is missing or stale. It runs as an MCP stdio
server for editor integration or as a one-shot CLI lookup.`,
	Version: project.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevelFlag)
	},
}

func init() {
	rootCmd.SetVersionTemplate("globalnav version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", ".",
		"Workspace root containing the GTAGS database")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace validates the --workspace flag and converts it to an
// absolute path.
func resolveWorkspace() (string, error) {
	stat, err := os.Stat(workspaceFlag)
	if err != nil || !stat.IsDir() {
		return "", fmt.Errorf("invalid workspace root: %s", workspaceFlag)
	}
	return filepath.Abs(workspaceFlag)
}

// setupLogging installs a stderr text handler; stdout stays reserved for
// the MCP transport and lookup output.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

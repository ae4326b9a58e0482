package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"globalnav/internal/config"
	"globalnav/internal/global"
	"globalnav/internal/navigator"
	"globalnav/internal/picker"
	"globalnav/internal/session"
	"globalnav/pkg/types"
)

var (
	// defFileFlag narrows the fallback search to the enclosing scope in this file
	defFileFlag string
	// defLineFlag is the zero-based cursor line within --file
	defLineFlag int
)

var defCmd = &cobra.Command{
	Use:   "def <symbol>",
	Short: "Find where a symbol is defined",
	Long: `Def looks a symbol up in the GTAGS database. When the database is missing
or has no answer, a heuristic search of --file ranks likely definition sites.
With multiple candidates an interactive picker opens, unless results.action
is set to take-first. The selected location prints as FILE:LINE: CODE.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDef(cmd, args[0])
	},
}

func init() {
	defCmd.Flags().StringVar(&defFileFlag, "file", "", "File the cursor is in")
	defCmd.Flags().IntVar(&defLineFlag, "line", 0, "Zero-based cursor line within --file")
	rootCmd.AddCommand(defCmd)
}

func runDef(cmd *cobra.Command, symbol string) error {
	root, err := resolveWorkspace()
	if err != nil {
		return err
	}

	configs, err := session.NewConfigCache(root)
	if err != nil {
		return err
	}
	defer configs.Close()

	docs, err := session.NewDocumentCache()
	if err != nil {
		return err
	}
	defer docs.Close()

	cfg := configs.Current()
	client := global.NewClient(cfg.Global.Path, root, global.ExecRunner{})
	nav := navigator.New(client, configs)

	var snapshot types.Snapshot
	if defFileFlag != "" {
		snapshot, err = docs.Snapshot(defFileFlag)
		if err != nil {
			slog.Warn("Could not read --file; fallback will have no document to search",
				"file", defFileFlag, "error", err)
		}
	}

	candidates, source, err := nav.FindDefinition(cmd.Context(), symbol, snapshot, defLineFlag)
	if errors.Is(err, navigator.ErrNoDefinition) {
		fmt.Printf("No definition found for '%s'\n", symbol)
		return nil
	}
	if err != nil {
		return err
	}
	slog.Debug("Definition lookup resolved", "symbol", symbol, "source", source, "candidates", len(candidates))

	chosen := candidates[0]
	if len(candidates) > 1 && cfg.Results.Action == config.ActionPresentChoices {
		choice, ok, pickErr := picker.Present(fmt.Sprintf("Definitions of %s", symbol), candidates)
		if pickErr != nil {
			return pickErr
		}
		if !ok {
			return nil
		}
		chosen = choice
	}

	if defFileFlag != "" {
		nav.RecordVisited(types.Position{File: defFileFlag, Line: defLineFlag})
	}

	fmt.Printf("%s:%d: %s\n", chosen.File, chosen.Line+1, chosen.Label)
	return nil
}

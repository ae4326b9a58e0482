package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"globalnav/internal/global"
	"globalnav/internal/navigator"
	"globalnav/internal/session"
)

var refsCmd = &cobra.Command{
	Use:   "refs <symbol>",
	Short: "Find where a symbol is referenced",
	Long: `Refs lists every reference to a symbol from the GTAGS database as
FILE:LINE: CODE lines. Reference lookups have no local fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRefs(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(refsCmd)
}

func runRefs(cmd *cobra.Command, symbol string) error {
	root, err := resolveWorkspace()
	if err != nil {
		return err
	}

	configs, err := session.NewConfigCache(root)
	if err != nil {
		return err
	}
	defer configs.Close()

	cfg := configs.Current()
	client := global.NewClient(cfg.Global.Path, root, global.ExecRunner{})
	nav := navigator.New(client, configs)

	candidates, err := nav.FindReferences(cmd.Context(), symbol)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Printf("No references found for '%s'\n", symbol)
		return nil
	}

	for _, c := range candidates {
		fmt.Printf("%s:%d: %s\n", c.File, c.Line+1, c.Label)
	}
	return nil
}

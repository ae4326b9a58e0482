package main

import (
	"github.com/spf13/cobra"

	"globalnav/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP stdio server",
	Long: `Serve starts an MCP server on stdio exposing the navigation tools
(global.find_definition, global.find_references, global.go_back,
global.record_visited) for editor and agent integration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace()
		if err != nil {
			return err
		}

		srv, err := server.New(root)
		if err != nil {
			return err
		}
		defer srv.Close()

		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

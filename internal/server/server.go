// Package server wires the navigation components into an MCP stdio server.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"globalnav/internal/global"
	"globalnav/internal/navigator"
	"globalnav/internal/session"
	"globalnav/internal/tools"
	"globalnav/pkg/project"
	"globalnav/pkg/types"
)

var _ types.Server = &GlobalNavServer{}

// GlobalNavServer represents the globalnav MCP server
type GlobalNavServer struct {
	mcpServer     *server.MCPServer
	nav           *navigator.Navigator
	configs       *session.ConfigCache
	docs          *session.DocumentCache
	workspaceRoot string
}

// New creates a globalnav MCP server rooted at workspaceRoot.
func New(workspaceRoot string) (*GlobalNavServer, error) {
	configs, err := session.NewConfigCache(workspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	docs, err := session.NewDocumentCache()
	if err != nil {
		configs.Close()
		return nil, fmt.Errorf("failed to create document cache: %w", err)
	}

	cfg := configs.Current()
	client := global.NewClient(cfg.Global.Path, workspaceRoot, global.ExecRunner{})
	nav := navigator.New(client, configs)

	s := &GlobalNavServer{
		mcpServer:     server.NewMCPServer(project.Name, project.Version),
		nav:           nav,
		configs:       configs,
		docs:          docs,
		workspaceRoot: workspaceRoot,
	}
	s.registerTools()
	return s, nil
}

// Serve runs the MCP server over stdio until the client disconnects.
func (s *GlobalNavServer) Serve(ctx context.Context) error {
	slog.Info("Starting globalnav MCP server", "workspace_root", s.workspaceRoot)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

// Close releases the session caches.
func (s *GlobalNavServer) Close() error {
	if err := s.docs.Close(); err != nil {
		return err
	}
	return s.configs.Close()
}

func (s *GlobalNavServer) registerTools() {
	findDefTool := tools.NewFindDefinitionTool(s.nav, s.docs, s.workspaceRoot)
	s.mcpServer.AddTool(findDefTool.GetTool(), findDefTool.Handle)

	findRefsTool := tools.NewFindReferencesTool(s.nav)
	s.mcpServer.AddTool(findRefsTool.GetTool(), findRefsTool.Handle)

	goBackTool := tools.NewGoBackTool(s.nav)
	s.mcpServer.AddTool(goBackTool.GetTool(), goBackTool.Handle)

	recordTool := tools.NewRecordVisitedTool(s.nav)
	s.mcpServer.AddTool(recordTool.GetTool(), recordTool.Handle)
}

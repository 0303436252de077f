// ABOUTME: MCP server setup for the training journal.
// ABOUTME: Wraps the MCP server with the plan and log registries.
package mcp

import (
	"context"

	"github.com/harperreed/runlog/internal/registry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with registry access.
type Server struct {
	mcpServer *mcp.Server
	logs      *registry.LogRegistry
	plans     *registry.PlanRegistry
}

// NewServer creates a new MCP server over the given registries.
func NewServer(logs *registry.LogRegistry, plans *registry.PlanRegistry) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "runlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		logs:      logs,
		plans:     plans,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

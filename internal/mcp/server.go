// ABOUTME: MCP server exposing the Vish scoring library to AI assistants.
// ABOUTME: Wraps catalog, search, history, and stats behind MCP tools and resources.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vishlabs/vish/internal/catalog"
	"github.com/vishlabs/vish/internal/history"
	"github.com/vishlabs/vish/internal/search"
)

// Server wraps the MCP server with the Vish core components.
type Server struct {
	mcpServer *mcp.Server
	catalog   *catalog.Store
	engine    *search.Engine
	hist      *history.Store
}

// NewServer creates an MCP server over the given catalog and history store.
func NewServer(cat *catalog.Store, hist *history.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vish",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		catalog:   cat,
		engine:    search.New(cat),
		hist:      hist,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// ABOUTME: MCP resource implementations for the Vish catalog and stats.
// ABOUTME: Provides vish://catalog, vish://recent, and vish://stats resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vishlabs/vish/internal/stats"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vish://catalog",
		Name:        "Food Catalog",
		Description: "All catalog entries with component scores and Vish Scores",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vish://recent",
		Name:        "Recent Analyses",
		Description: "The 10 most recent food analyses",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vish://stats",
		Name:        "Analysis Statistics",
		Description: "Aggregate statistics over the analysis history",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

func (s *Server) jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return s.jsonResource("vish://catalog", s.catalog.All())
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.hist.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(records) > 10 {
		records = records[:10]
	}
	return s.jsonResource("vish://recent", records)
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.hist.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return s.jsonResource("vish://stats", stats.Compute(records, time.Now()))
}

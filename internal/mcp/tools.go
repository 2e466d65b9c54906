// ABOUTME: MCP tool implementations for catalog search, history, and stats.
// ABOUTME: Read-mostly surface; note editing and deletion are the only mutations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vishlabs/vish/internal/search"
	"github.com/vishlabs/vish/internal/stats"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food catalog by text query with optional filters",
	}, s.handleSearchFoods)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "lookup_barcode",
		Description: "Look up a catalog entry by exact barcode",
	}, s.handleLookupBarcode)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List past food analyses, most recent first",
	}, s.handleListHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Compute aggregate statistics over the analysis history",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_note",
		Description: "Set the free-text note on a past analysis",
	}, s.handleUpdateNote)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_analysis",
		Description: "Delete a past analysis by ID",
	}, s.handleDeleteAnalysis)
}

// Tool input/output types

type searchFoodsInput struct {
	Query            string   `json:"query,omitempty" jsonschema:"Text query; empty matches all entries"`
	Page             int      `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	PageSize         int      `json:"page_size,omitempty" jsonschema:"Results per page (default 10)"`
	Category         string   `json:"category,omitempty" jsonschema:"Exact category filter"`
	MinScore         *int     `json:"min_score,omitempty" jsonschema:"Minimum Vish Score (inclusive)"`
	MaxScore         *int     `json:"max_score,omitempty" jsonschema:"Maximum Vish Score (inclusive)"`
	DietaryTags      []string `json:"dietary_tags,omitempty" jsonschema:"Match entries with at least one of these tags"`
	ExcludeAllergens []string `json:"exclude_allergens,omitempty" jsonschema:"Exclude entries containing any of these allergens"`
	MinEnvironmental *int     `json:"min_environmental,omitempty" jsonschema:"Minimum environmental score (inclusive)"`
}

type lookupBarcodeInput struct {
	Barcode string `json:"barcode" jsonschema:"Exact barcode"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type updateNoteInput struct {
	ID   string `json:"id" jsonschema:"Analysis record ID"`
	Note string `json:"note" jsonschema:"Note text"`
}

type deleteAnalysisInput struct {
	ID string `json:"id" jsonschema:"Analysis record ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchFoodsInput) (*mcp.CallToolResult, any, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 {
		input.PageSize = 10
	}

	result := s.engine.Search(input.Query, input.Page, input.PageSize, &search.Filters{
		Category:         input.Category,
		MinScore:         input.MinScore,
		MaxScore:         input.MaxScore,
		DietaryTags:      input.DietaryTags,
		ExcludeAllergens: input.ExcludeAllergens,
		MinEnvironmental: input.MinEnvironmental,
	})

	if result.Total == 0 {
		return nil, map[string]any{"message": "No matching foods found."}, nil
	}
	return nil, result, nil
}

func (s *Server) handleLookupBarcode(ctx context.Context, req *mcp.CallToolRequest, input lookupBarcodeInput) (*mcp.CallToolResult, any, error) {
	item, ok := s.catalog.ByBarcode(input.Barcode)
	if !ok {
		return nil, nil, fmt.Errorf("no entry with barcode %s", input.Barcode)
	}
	return nil, item, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	records, err := s.hist.All()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(records) == 0 {
		return nil, map[string]any{"message": "No analyses recorded yet."}, nil
	}
	if len(records) > input.Limit {
		records = records[:input.Limit]
	}
	return nil, records, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	records, err := s.hist.All()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read history: %w", err)
	}
	return nil, stats.Compute(records, time.Now()), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest, input updateNoteInput) (*mcp.CallToolResult, simpleOutput, error) {
	ok, err := s.hist.UpdateNote(input.ID, input.Note)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update note: %w", err)
	}
	if !ok {
		return nil, simpleOutput{Message: fmt.Sprintf("No analysis with ID %s", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Updated note on %s", input.ID)}, nil
}

func (s *Server) handleDeleteAnalysis(ctx context.Context, req *mcp.CallToolRequest, input deleteAnalysisInput) (*mcp.CallToolResult, simpleOutput, error) {
	ok, err := s.hist.Delete(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete analysis: %w", err)
	}
	if !ok {
		return nil, simpleOutput{Message: fmt.Sprintf("No analysis with ID %s", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted analysis %s", input.ID)}, nil
}

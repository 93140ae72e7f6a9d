package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pressgraph-hq/pressgraph-mcp/pkg/apiclient"
	"github.com/pressgraph-hq/pressgraph-mcp/pkg/toolresult"
)

// registerTools wires every PressGraph tool into the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "search_news",
		Description: "Search published news articles by keyword. Returns matching articles with title, source, and publication date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search keywords",
				},
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Zero-based results page",
				},
				"page_size": map[string]interface{}{
					"type":        "number",
					"description": "Articles per page (max 100)",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "ISO 639-1 language code filter (e.g. 'en', 'bn')",
				},
			},
			Required: []string{"query"},
		},
	}, s.handleSearchNews)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_article",
		Description: "Fetch a single article by its PressGraph article id, including full body text and metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"article_id": map[string]interface{}{
					"type":        "string",
					"description": "PressGraph article id (from search_news results)",
				},
			},
			Required: []string{"article_id"},
		},
	}, s.handleGetArticle)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sources",
		Description: "List news sources known to PressGraph, optionally filtered by category and language.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Source category (e.g. 'business', 'technology')",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "ISO 639-1 language code filter",
				},
			},
		},
	}, s.handleListSources)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_alert",
		Description: "Create a standing search alert. PressGraph evaluates the query on the given schedule and records matches.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search keywords to watch",
				},
				"frequency": map[string]interface{}{
					"type":        "string",
					"description": "Evaluation schedule: 'hourly' or 'daily' (default 'daily')",
				},
			},
			Required: []string{"query"},
		},
	}, s.handleCreateAlert)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_alert",
		Description: "Delete a standing search alert by id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"alert_id": map[string]interface{}{
					"type":        "string",
					"description": "Alert id (from create_alert)",
				},
			},
			Required: []string{"alert_id"},
		},
	}, s.handleDeleteAlert)
}

func (s *Server) handleSearchNews(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	params := apiclient.Params{"q": query}
	args := request.GetArguments()
	// Pass optional filters through as given; page 0 is a valid page.
	for _, key := range []string{"page", "page_size", "language"} {
		if v, ok := args[key]; ok {
			params[key] = v
		}
	}

	result, err := s.api.Get(ctx, "/news/search", params)
	if err != nil {
		return toolresult.FormatError(err, s.log, "searching news", apiHelpText), nil
	}
	return textResponse(result)
}

func (s *Server) handleGetArticle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("article_id")
	if err != nil {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	result, err := s.api.Get(ctx, "/news/articles/"+url.PathEscape(id), nil)
	if err != nil {
		return toolresult.FormatError(err, s.log, "fetching article", apiHelpText), nil
	}
	return textResponse(result)
}

func (s *Server) handleListSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := apiclient.Params{}
	args := request.GetArguments()
	for _, key := range []string{"category", "language"} {
		if v, ok := args[key]; ok {
			params[key] = v
		}
	}

	result, err := s.api.Get(ctx, "/news/sources", params)
	if err != nil {
		return toolresult.FormatError(err, s.log, "listing sources", apiHelpText), nil
	}
	return textResponse(result)
}

func (s *Server) handleCreateAlert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	body := map[string]any{
		"query":     query,
		"frequency": request.GetString("frequency", "daily"),
	}

	result, err := s.api.Post(ctx, "/alerts", body)
	if err != nil {
		return toolresult.FormatError(err, s.log, "creating alert", apiHelpText), nil
	}
	return textResponse(result)
}

func (s *Server) handleDeleteAlert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("alert_id")
	if err != nil {
		return mcp.NewToolResultError("alert_id is required"), nil
	}

	result, err := s.api.Delete(ctx, "/alerts/"+url.PathEscape(id), nil)
	if err != nil {
		return toolresult.FormatError(err, s.log, "deleting alert", apiHelpText), nil
	}
	return textResponse(result)
}

// textResponse renders a decoded API payload as a single pretty-printed
// JSON text block.
func textResponse(result any) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(encoded)),
		},
	}, nil
}

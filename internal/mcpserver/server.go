// Package mcpserver exposes the PressGraph API as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/pressgraph-hq/pressgraph-mcp/pkg/apiclient"
	"github.com/pressgraph-hq/pressgraph-mcp/pkg/toolresult"
)

// API is the client surface the tool handlers rely on, abstracted so tests
// can inject a fake.
type API interface {
	Get(ctx context.Context, path string, query apiclient.Params) (any, error)
	Post(ctx context.Context, path string, body any) (any, error)
	Delete(ctx context.Context, path string, body any) (any, error)
}

// Server wraps the MCP server and the PressGraph tool handlers.
type Server struct {
	mcpServer *server.MCPServer
	api       API
	log       toolresult.Logger
}

// NewServer builds the MCP server and registers all PressGraph tools.
func NewServer(api API, log toolresult.Logger, version string) (*Server, error) {
	if api == nil {
		return nil, fmt.Errorf("api client must not be nil")
	}
	if version == "" {
		version = "dev"
	}

	s := &Server{
		mcpServer: server.NewMCPServer("pressgraph", version),
		api:       api,
		log:       log,
	}
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until the transport closes.
func (s *Server) Run(ctx context.Context) error {
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

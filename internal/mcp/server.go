// ABOUTME: MCP server setup for the coaching core.
// ABOUTME: Wraps the MCP server with a store handle and behavior scorer.
package mcp

import (
	"context"

	"github.com/harperreed/coach/internal/behavior"
	"github.com/harperreed/coach/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store and scorer access.
type Server struct {
	mcpServer *mcp.Server
	st        store.Store
	scorer    *behavior.Scorer

	// defaultUser is the account tools act on when the caller does not
	// pass an explicit user_id.
	defaultUser string
	defaultName string
}

// NewServer creates a new MCP server over the given store.
func NewServer(st store.Store, defaultUser, defaultName string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "coach",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:   mcpServer,
		st:          st,
		scorer:      behavior.NewScorer(st),
		defaultUser: defaultUser,
		defaultName: defaultName,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// user resolves the account a tool call acts on.
func (s *Server) user(userID string) string {
	if userID != "" {
		return userID
	}
	return s.defaultUser
}

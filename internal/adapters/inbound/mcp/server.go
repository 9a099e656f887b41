package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPlugforgeMCPServer creates a new MCP server with the plugforge
// validation tools and resources registered. Plugin paths arrive per tool
// call, so the server holds no per-project state.
func NewPlugforgeMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"plugforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/plugforge/plugforge/internal/domain"
	"github.com/plugforge/plugforge/internal/domain/checks"
)

// registerResources registers the plugforge MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. plugforge://config/defaults - built-in validation config
	s.AddResource(
		mcplib.NewResource(
			"plugforge://config/defaults",
			"Default Validation Config",
			mcplib.WithResourceDescription("Built-in validation configuration a plugin config document is merged onto"),
			mcplib.WithMIMEType("application/json"),
		),
		handleDefaultConfigResource(),
	)

	// 2. plugforge://checks - registered check names
	s.AddResource(
		mcplib.NewResource(
			"plugforge://checks",
			"Check Names",
			mcplib.WithResourceDescription("Every registered check name, required checks first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCheckNamesResource(),
	)
}

func handleDefaultConfigResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(domain.DefaultValidationConfig(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "plugforge://config/defaults",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleCheckNamesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(checks.AllNames(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling check names: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "plugforge://checks",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

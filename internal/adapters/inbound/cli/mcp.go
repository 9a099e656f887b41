package cli

import (
	mcpadapter "github.com/plugforge/plugforge/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the plugforge MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the plugforge MCP server (stdio)",
		Long:  "Start the plugforge MCP server using stdio transport so AI coding assistants can validate and audit plugins.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewPlugforgeMCPServer()
			return server.ServeStdio(s)
		},
	}
}

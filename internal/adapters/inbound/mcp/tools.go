package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	appconfig "github.com/plugforge/plugforge/internal/adapters/outbound/config"
	"github.com/plugforge/plugforge/internal/adapters/outbound/gitinfo"
	"github.com/plugforge/plugforge/internal/adapters/outbound/history"
	"github.com/plugforge/plugforge/internal/adapters/outbound/runner"
	"github.com/plugforge/plugforge/internal/application"
	"github.com/plugforge/plugforge/internal/domain"
	"github.com/plugforge/plugforge/internal/domain/checks"
)

// registerTools registers the plugforge MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. plugforge_validate
	s.AddTool(
		mcplib.NewTool("plugforge_validate",
			mcplib.WithDescription("Validate a Metalsmith plugin directory and return the categorized, scored report as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Plugin directory to validate"),
			),
			mcplib.WithString("checks", mcplib.Description("Comma-separated check names, or \"all\" (default: the required checks)")),
			mcplib.WithBoolean("functional", mcplib.Description("Execute the plugin's test and coverage scripts")),
		),
		handleValidate(),
	)

	// 2. plugforge_report
	s.AddTool(
		mcplib.NewTool("plugforge_report",
			mcplib.WithDescription("Validate a plugin directory and return the plain-text report"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Plugin directory to validate"),
			),
			mcplib.WithBoolean("functional", mcplib.Description("Execute the plugin's test and coverage scripts")),
		),
		handleReport(),
	)

	// 3. plugforge_audit
	s.AddTool(
		mcplib.NewTool("plugforge_audit",
			mcplib.WithDescription("Batch-audit several plugin directories and return score summaries"),
			mcplib.WithString("paths",
				mcplib.Required(),
				mcplib.Description("Comma-separated plugin directories"),
			),
			mcplib.WithString("checks", mcplib.Description("Comma-separated check names, or \"all\"")),
			mcplib.WithBoolean("functional", mcplib.Description("Execute each plugin's test and coverage scripts")),
		),
		handleAudit(),
	)
}

// newValidateService creates the standard service with its outbound adapters.
func newValidateService() *application.ValidateService {
	return application.NewValidateService(appconfig.New(), runner.New(), gitinfo.New())
}

func handleValidate() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		names := checkNamesFromArgs(request)
		functional, _ := request.GetArguments()["functional"].(bool)

		report, err := newValidateService().Validate(ctx, path, names, functional)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleReport() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		functional, _ := request.GetArguments()["functional"].(bool)

		report, err := newValidateService().Validate(ctx, path, nil, functional)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return textResult(domain.RenderReport(report)), nil
	}
}

func handleAudit() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pathsStr, err := request.RequireString("paths")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		paths := splitAndTrim(pathsStr)
		if len(paths) == 0 {
			return errorResult("paths must name at least one directory"), nil
		}

		names := checkNamesFromArgs(request)
		functional, _ := request.GetArguments()["functional"].(bool)

		toolCfg := appconfig.DefaultToolConfig()
		auditSvc := application.NewAuditService(
			newValidateService(),
			history.New(),
			toolCfg.Concurrency,
			false, // MCP calls do not write history
		)

		results, err := auditSvc.Audit(ctx, ".", paths, names, functional)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(results)
	}
}

func checkNamesFromArgs(request mcplib.CallToolRequest) []string {
	raw, _ := request.GetArguments()["checks"].(string)
	if raw == "" {
		return nil
	}
	if raw == "all" {
		return checks.AllNames()
	}
	return splitAndTrim(raw)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

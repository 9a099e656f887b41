package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appconfig "github.com/plugforge/plugforge/internal/adapters/outbound/config"
	"github.com/plugforge/plugforge/internal/adapters/outbound/gitinfo"
	"github.com/plugforge/plugforge/internal/adapters/outbound/runner"
	"github.com/plugforge/plugforge/internal/adapters/outbound/tui"
	"github.com/plugforge/plugforge/internal/application"
	"github.com/plugforge/plugforge/internal/domain"
	"github.com/plugforge/plugforge/internal/domain/checks"
)

func newValidateCmd() *cobra.Command {
	var (
		checkList  string
		functional bool
		jsonOutput bool
		plain      bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a plugin directory",
		Long:  "Run the validation pipeline against a plugin directory and print the categorized, scored report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pluginPath := "."
			if len(args) == 1 {
				pluginPath = args[0]
			}

			toolCfg, err := appconfig.LoadToolConfig(".")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("functional") {
				functional = toolCfg.Functional
			}

			names := resolveCheckNames(checkList, toolCfg)

			svc := application.NewValidateService(appconfig.New(), runner.New(), gitinfo.New())

			report, err := svc.Validate(cmd.Context(), pluginPath, names, functional)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			case plain:
				fmt.Fprint(cmd.OutOrStdout(), domain.RenderReport(report))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(report))
			}

			if ciMode && !report.Summary.Success {
				return fmt.Errorf("validation failed: %d check(s) failed", report.Summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkList, "checks", "", "Comma-separated check names (or \"all\"); defaults from .plugforge.yaml")
	cmd.Flags().BoolVar(&functional, "functional", false, "Execute the plugin's test and coverage scripts (default from .plugforge.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain-text report without colors")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when any check fails")

	return cmd
}

// resolveCheckNames turns the --checks flag into the check-name list:
// empty defers to the tool config, "all" expands to every registered check.
// Unknown names pass through; the pipeline skips them silently.
func resolveCheckNames(flag string, toolCfg appconfig.ToolConfig) []string {
	switch flag {
	case "":
		return toolCfg.DefaultChecks
	case "all":
		return checks.AllNames()
	}

	var names []string
	for _, n := range strings.Split(flag, ",") {
		if trimmed := strings.TrimSpace(n); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	appconfig "github.com/plugforge/plugforge/internal/adapters/outbound/config"
	"github.com/plugforge/plugforge/internal/adapters/outbound/gitinfo"
	"github.com/plugforge/plugforge/internal/adapters/outbound/history"
	"github.com/plugforge/plugforge/internal/adapters/outbound/runner"
	"github.com/plugforge/plugforge/internal/adapters/outbound/tui"
	"github.com/plugforge/plugforge/internal/application"
)

func newAuditCmd() *cobra.Command {
	var (
		checkList   string
		functional  bool
		jsonOutput  bool
		discover    bool
		concurrency int
		noHistory   bool
		ciMode      bool
	)

	cmd := &cobra.Command{
		Use:   "audit <path> [path...]",
		Short: "Batch-audit multiple plugin directories",
		Long:  "Validate several plugins in one run and print a ranked summary. With --discover, a single path is treated as a parent directory and every child containing a package.json is audited.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolCfg, err := appconfig.LoadToolConfig(".")
			if err != nil {
				return err
			}

			paths := args
			if discover {
				if len(args) != 1 {
					return fmt.Errorf("--discover takes exactly one parent directory")
				}
				paths, err = discoverPlugins(args[0])
				if err != nil {
					return fmt.Errorf("discovering plugins: %w", err)
				}
				if len(paths) == 0 {
					return fmt.Errorf("no plugin directories found under %s", args[0])
				}
			}

			names := resolveCheckNames(checkList, toolCfg)

			if !cmd.Flags().Changed("functional") {
				functional = toolCfg.Functional
			}
			if concurrency == 0 {
				concurrency = toolCfg.Concurrency
			}

			validateSvc := application.NewValidateService(appconfig.New(), runner.New(), gitinfo.New())
			auditSvc := application.NewAuditService(
				validateSvc,
				history.New(),
				concurrency,
				toolCfg.History && !noHistory,
			)

			results, err := auditSvc.Audit(cmd.Context(), ".", paths, names, functional)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAuditSummary(results))
			}

			if ciMode {
				for _, r := range results {
					if r.Report == nil || !r.Report.Summary.Success {
						return fmt.Errorf("audit failed: at least one plugin did not pass")
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkList, "checks", "", "Comma-separated check names (or \"all\")")
	cmd.Flags().BoolVar(&functional, "functional", false, "Execute each plugin's test and coverage scripts (default from .plugforge.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&discover, "discover", false, "Treat the path as a parent directory of plugins")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Max plugins validated in parallel (default from .plugforge.yaml)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip writing audit history")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when any plugin fails")

	return cmd
}

// discoverPlugins lists immediate subdirectories of parent that contain a
// package.json.
func discoverPlugins(parent string) ([]string, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(parent, e.Name())
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			paths = append(paths, dir)
		}
	}
	return paths, nil
}

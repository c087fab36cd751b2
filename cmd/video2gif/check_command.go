package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"video2gif/internal/config"
	"video2gif/internal/deps"
	"video2gif/internal/preflight"
	"video2gif/internal/services"
)

// versionFlags maps requirement names to the flag that makes the tool print
// its version.
var versionFlags = map[string]string{
	"FFmpeg":   "-version",
	"Gifsicle": "--version",
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var optimizer bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report external tools and directory status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			rows, failed := checkRows(cmd.Context(), cfg, optimizer, colorize)
			for _, line := range renderSectionHeader("video2gif dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			if failed > 0 {
				fmt.Fprintln(out, renderSummaryLine(statusError, fmt.Sprintf("%d required check(s) failed", failed), colorize))
				return services.Wrap(services.ErrDependency, "check", "verify", fmt.Sprintf("%d required check(s) failed", failed), nil)
			}
			fmt.Fprintln(out, renderSummaryLine(statusOK, "ready to convert", colorize))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&optimizer, "gifsicle", "g", false, "Treat gifsicle as required")
	return cmd
}

// checkRows renders one row per executable plus the work directory and
// counts the required failures.
func checkRows(ctx context.Context, cfg *config.Config, needOptimizer, colorize bool) ([][]string, int) {
	var rows [][]string
	failed := 0
	for _, status := range preflight.CheckSystemDeps(cfg, needOptimizer) {
		kind, detail := statusOK, describeBinary(ctx, status)
		if !status.Available {
			detail = status.Detail
			if status.Optional {
				kind = statusWarn
				detail += " (optional)"
			} else {
				kind = statusError
				failed++
			}
		}
		rows = append(rows, []string{status.Name, renderStatus(kind, colorize), detail})
	}

	dir := preflight.CheckDirectoryAccess("Work directory", cfg.Paths.WorkDir)
	kind := statusOK
	if !dir.Passed {
		kind = statusError
		failed++
	}
	rows = append(rows, []string{dir.Name, renderStatus(kind, colorize), dir.Detail})
	return rows, failed
}

func describeBinary(ctx context.Context, status deps.Status) string {
	flag, ok := versionFlags[status.Name]
	if !ok {
		return status.Path
	}
	version, err := deps.Version(ctx, status.Path, flag)
	if err != nil || strings.TrimSpace(version) == "" {
		return status.Path
	}
	return fmt.Sprintf("%s (%s)", status.Path, version)
}

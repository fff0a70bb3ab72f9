package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"eplotdb/internal/api"
	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
	"eplotdb/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show catalog database and dependency status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *catalog.Store) error {
				health, err := store.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}
				statuses := deps.CheckBinaries(deps.Requirements(cfg))
				if jsonOutput {
					return writeJSON(cmd, api.FromHealth(health, statuses))
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				lines := renderSectionHeader("Catalog", colorize)
				lines = append(lines, databaseLines(health, colorize)...)
				lines = append(lines, renderStatusLine("Content", statusInfo, cfg.ContentDir(), colorize))
				lines = append(lines, renderStatusLine("Sync", statusInfo, yesNo(cfg.Source.Sync), colorize))
				lines = append(lines, "")
				lines = append(lines, renderSectionHeader("Paths", colorize)...)
				lines = append(lines, preflightLines(preflight.RunAll(cfg), colorize)...)
				lines = append(lines, "")
				lines = append(lines, renderSectionHeader("Dependencies", colorize)...)
				lines = append(lines, dependencyLines(statuses, colorize)...)
				fmt.Fprintln(out, strings.Join(lines, "\n"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print status as JSON")
	return cmd
}

func databaseLines(health catalog.DatabaseHealth, colorize bool) []string {
	lines := []string{renderStatusLine("Database", statusInfo, health.DBPath, colorize)}
	if !health.DatabaseExists {
		return append(lines, renderStatusLine("File", statusWarn, "not created yet", colorize))
	}

	size := humanize.Bytes(uint64(max(health.SizeBytes, 0)))
	if modified, err := time.Parse(time.RFC3339, health.ModifiedAt); err == nil {
		size = fmt.Sprintf("%s, modified %s", size, humanize.Time(modified))
	}
	lines = append(lines, renderStatusLine("File", statusOK, size, colorize))

	if health.IntegrityCheck {
		lines = append(lines, renderStatusLine("Integrity", statusOK, "ok", colorize))
	} else {
		lines = append(lines, renderStatusLine("Integrity", statusError, orDash(health.Error), colorize))
	}

	rows := fmt.Sprintf("%s series, %s episodes",
		humanize.Comma(int64(health.Counts.Series)),
		humanize.Comma(int64(health.Counts.Episodes)),
	)
	kind := statusOK
	if health.Counts.Series == 0 {
		kind = statusWarn
		rows += " (run `eplotdb sync`)"
	}
	return append(lines, renderStatusLine("Rows", kind, rows, colorize))
}

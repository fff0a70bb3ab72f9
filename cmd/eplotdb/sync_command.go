package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"eplotdb/internal/catalog"
	"eplotdb/internal/config"
	"eplotdb/internal/failure"
	"eplotdb/internal/ingest"
	"eplotdb/internal/logging"
	"eplotdb/internal/preflight"
	"eplotdb/internal/source"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var noPull bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Update the posts checkout and rebuild the catalog",
		Long: `Sync clones or pulls the configured posts repository, then rebuilds both
catalog tables from the markdown files in its content directory.

Use --dir to rebuild from an arbitrary directory without touching git.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if failed := preflight.Failed(preflight.Writable(cfg)); len(failed) > 0 {
				return failure.Wrap(failure.ErrConfiguration, "sync", "preflight", failed[0].Name+": "+failed[0].Detail, nil)
			}

			contentDir, err := resolveContentDir(cmd, ctx, cfg, strings.TrimSpace(dirFlag), noPull)
			if err != nil {
				logging.ErrorWithContext(logger, "repository sync failed", failure.Kind(err),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check source.repo_url and network access, or pass --dir"),
				)
				return err
			}

			return ctx.withStore(func(store *catalog.Store) error {
				summary, err := ingest.Run(cmd.Context(), store, ingest.Options{
					ContentDir: contentDir,
					LockPath:   cfg.LockPath(),
					Logger:     logger,
				})
				if err != nil {
					logging.ErrorWithContext(logger, "rebuild failed", failure.Kind(err),
						logging.String(logging.FieldRunID, summary.RunID),
						logging.Error(err),
					)
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, summary)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderSyncSummary(summary))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Read posts from this directory and skip git")
	cmd.Flags().BoolVar(&noPull, "no-pull", false, "Use the existing checkout without pulling")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

func resolveContentDir(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, dirFlag string, noPull bool) (string, error) {
	if dirFlag != "" {
		return config.ExpandPath(dirFlag)
	}
	if !cfg.Source.Sync || strings.TrimSpace(cfg.Source.ContentDir) != "" {
		return cfg.ContentDir(), nil
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return "", err
	}
	result, err := source.Acquire(cmd.Context(), cfg, source.Options{NoPull: noPull}, logger)
	if err != nil {
		return "", err
	}
	return result.ContentDir, nil
}

func renderSyncSummary(summary ingest.Summary) string {
	rows := [][]string{
		{"Content", summary.ContentDir},
		{"Files", strconv.Itoa(summary.Files)},
		{"Degraded", strconv.Itoa(summary.Degraded)},
		{"Series", humanize.Comma(int64(summary.Series))},
		{"Episodes", humanize.Comma(int64(summary.Episodes))},
		{"Duration", summary.Duration.Round(time.Millisecond).String()},
		{"Run", summary.RunID},
	}
	return renderTable([]column{{header: "Field"}, {header: "Value"}}, rows)
}

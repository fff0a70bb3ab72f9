package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"eplotdb/internal/catalog"
	"eplotdb/internal/config"
	"eplotdb/internal/export"
	"eplotdb/internal/fileutil"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *catalog.Store) error {
				doc, err := export.Build(cmd.Context(), store, time.Now())
				if err != nil {
					return fmt.Errorf("build export: %w", err)
				}

				target := strings.TrimSpace(outputFlag)
				if target == "" || target == "-" {
					return export.Write(cmd.OutOrStdout(), format, doc)
				}
				path, err := config.ExpandPath(target)
				if err != nil {
					return err
				}
				result, err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
					return export.Write(w, format, doc)
				})
				if err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d series to %s (%s, sha256 %s)\n",
					len(doc.Series), result.Path, humanize.Bytes(uint64(result.Bytes)), result.SHA256[:12])
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}


package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eplotdb/internal/extract"
	"eplotdb/internal/ingest"
)

// inspectResult is the JSON shape of one inspected file.
type inspectResult struct {
	File            string   `json:"file"`
	SeriesNameRaw   string   `json:"seriesNameRaw"`
	SeriesNameClean string   `json:"seriesNameClean"`
	EpNum           string   `json:"epNum"`
	EpYear          string   `json:"epYear"`
	EpMonth         string   `json:"epMonth"`
	Abstract        string   `json:"abstract"`
	Missing         []string `json:"missing,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "inspect FILE...",
		Short:       "Show what would be extracted from posts without touching the catalog",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			episodes := ingest.Inspect(args, nil)
			if jsonOutput {
				results := make([]inspectResult, 0, len(episodes))
				for _, ep := range episodes {
					results = append(results, toInspectResult(ep))
				}
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			for i, ep := range episodes {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, renderTable([]column{{header: "Field"}, {header: ep.File, maxWidth: abstractColumnWidth}}, [][]string{
					{"Series (raw)", ep.SeriesNameRaw},
					{"Series", ep.SeriesNameClean},
					{"Episode", orDash(ep.EpNum)},
					{"Year", orDash(ep.EpYear)},
					{"Month", orDash(ep.EpMonth)},
					{"Abstract", orDash(ep.Abstract)},
					{"Missing", orDash(strings.Join(ep.Degraded, ", "))},
				}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	return cmd
}

func toInspectResult(ep extract.Episode) inspectResult {
	return inspectResult{
		File:            ep.File,
		SeriesNameRaw:   ep.SeriesNameRaw,
		SeriesNameClean: ep.SeriesNameClean,
		EpNum:           ep.EpNum,
		EpYear:          ep.EpYear,
		EpMonth:         ep.EpMonth,
		Abstract:        ep.Abstract,
		Missing:         ep.Degraded,
	}
}

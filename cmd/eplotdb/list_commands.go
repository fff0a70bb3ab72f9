package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"eplotdb/internal/api"
	"eplotdb/internal/catalog"
)

const abstractColumnWidth = 60

func newSeriesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "series",
		Short: "List series in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				series, err := store.ListSeries(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.FromSeriesList(series))
				}
				out := cmd.OutOrStdout()
				if len(series) == 0 {
					fmt.Fprintln(out, "Catalog is empty; run `eplotdb sync` first")
					return nil
				}
				rows := make([][]string, 0, len(series))
				for _, s := range series {
					rows = append(rows, []string{
						strconv.FormatInt(s.ID, 10),
						s.Name,
						orDash(s.Year),
						orDash(s.Month),
					})
				}
				fmt.Fprintln(out, renderTable([]column{
					{header: "ID", align: alignRight},
					{header: "Series"},
					{header: "Year"},
					{header: "Month"},
				}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print series as JSON")
	return cmd
}

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	var seriesFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List episodes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				episodes, err := loadEpisodes(cmd, store, strings.TrimSpace(seriesFlag))
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.FromEpisodes(episodes))
				}
				out := cmd.OutOrStdout()
				if len(episodes) == 0 {
					fmt.Fprintln(out, "No episodes found")
					return nil
				}
				rows := make([][]string, 0, len(episodes))
				for _, ep := range episodes {
					rows = append(rows, []string{
						strconv.FormatInt(ep.ID, 10),
						ep.Name,
						orDash(ep.Num),
						orDash(ep.Year),
						orDash(ep.Month),
						strconv.FormatInt(ep.SeriesID, 10),
						orDash(ep.Abstract),
					})
				}
				fmt.Fprintln(out, renderTable([]column{
					{header: "ID", align: alignRight},
					{header: "Name"},
					{header: "Ep"},
					{header: "Year"},
					{header: "Month"},
					{header: "Series", align: alignRight},
					{header: "Abstract", maxWidth: abstractColumnWidth},
				}, rows))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&seriesFlag, "series", "s", "", "Only episodes of this cleaned series name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print episodes as JSON")
	return cmd
}

func loadEpisodes(cmd *cobra.Command, store *catalog.Store, seriesName string) ([]catalog.Episode, error) {
	if seriesName == "" {
		return store.ListEpisodes(cmd.Context())
	}
	series, err := store.SeriesByName(cmd.Context(), seriesName)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, fmt.Errorf("series %q not found", seriesName)
	}
	return store.EpisodesForSeries(cmd.Context(), series.ID)
}

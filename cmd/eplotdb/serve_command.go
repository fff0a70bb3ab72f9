package main

import (
	"strings"

	"github.com/spf13/cobra"

	"eplotdb/internal/api"
	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			bind := strings.TrimSpace(bindFlag)
			if bind == "" {
				bind = cfg.API.Bind
			}
			return ctx.withStore(func(store *catalog.Store) error {
				server := api.NewServer(bind, store, deps.Requirements(cfg), logger)
				return server.ListenAndServe(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Listen address (defaults to api.bind)")
	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"pokedex/app"
	"pokedex/web"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Pokédex over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func runServe(ctx context.Context, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := bootstrap(flags)
	if err != nil {
		return err
	}

	a := app.New(d.cfg, d.client, nil)
	// Initial load and every /reload persist newly fetched details
	a.OnLoaded(d.saveCache)

	// The page is usable while the grid fills in, like a browser loading it on page load
	go func() {
		_, _ = a.Load(ctx)
	}()

	return web.Run(web.NewServer(a, d.cfg), d.cfg.Address)
}

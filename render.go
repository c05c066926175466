package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"

	"pokedex/app"
	"pokedex/web/pages"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Load the Pokédex once and write the rendered page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			d, err := bootstrap(flags)
			if err != nil {
				return err
			}

			a := app.New(d.cfg, d.client, nil)
			res, err := a.Load(ctx)
			if err != nil {
				// The error message is part of the page; still write it
				logger.LogErr(err, "listing failed, writing error page")
			} else {
				d.saveCache()
			}

			page, err := pages.RenderHome(a, d.cfg.VersionGroup)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
				return serr.Wrap(err, "failed to write page", "path", outPath)
			}
			logger.Info("Page written", "path", outPath, "cards", res.Loaded, "failed", res.Failed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

package main

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"

	"pokedex/config"
	"pokedex/models"
	"pokedex/pokeapi"
)

type rootFlags struct {
	configPath string
	logLevel   string
	address    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokédex served from PokéAPI data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand means serve
			return runServe(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.address, "addr", "", "Listen address, e.g. :8000")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd(flags))

	return cmd
}

// deps is what every command needs once flags and config are resolved
type deps struct {
	cfg    *config.Config
	cache  *models.DetailCache
	client *pokeapi.Client
}

func bootstrap(flags *rootFlags) (*deps, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	// Flags win over file and environment
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.address != "" {
		cfg.Address = flags.address
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.SetLogLevel(cfg.LogLevel)

	var cache *models.DetailCache
	if cfg.CacheFile != "" {
		cache, err = models.OpenDetailCache(cfg.CacheFile)
		if err != nil {
			return nil, serr.Wrap(err, "failed to open detail cache")
		}
	}

	return &deps{
		cfg:    cfg,
		cache:  cache,
		client: pokeapi.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, cache),
	}, nil
}

// saveCache persists any newly fetched details; failures only cost a refetch next time
func (d *deps) saveCache() {
	if err := d.cache.Save(); err != nil {
		logger.LogErr(err, "failed to save detail cache")
	}
}

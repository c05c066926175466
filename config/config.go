// Package config loads runtime settings from defaults, an optional YAML file,
// and POKEDEX_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the application
type Config struct {
	APIBaseURL       string        `yaml:"api_base_url" validate:"required,url"`
	ListLimit        int           `yaml:"list_limit" validate:"min=1,max=2000"`
	FetchConcurrency int           `yaml:"fetch_concurrency" validate:"min=1,max=64"`
	RequestTimeout   time.Duration `yaml:"request_timeout" validate:"gt=0"`
	VersionGroup     string        `yaml:"version_group" validate:"required,version_group"`
	OpenDelay        time.Duration `yaml:"open_delay" validate:"gte=0"`
	CloseDelay       time.Duration `yaml:"close_delay" validate:"gte=0"`
	Address          string        `yaml:"address" validate:"required"`
	LogLevel         string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	CacheFile        string        `yaml:"cache_file"`
}

// Default returns the settings that reproduce the classic Pokédex page:
// 100 Pokémon, FireRed/LeafGreen moves, 50ms open and 500ms close transitions.
func Default() *Config {
	return &Config{
		APIBaseURL:       "https://pokeapi.co/api/v2",
		ListLimit:        100,
		FetchConcurrency: 8,
		RequestTimeout:   15 * time.Second,
		VersionGroup:     "firered-leafgreen",
		OpenDelay:        50 * time.Millisecond,
		CloseDelay:       500 * time.Millisecond,
		Address:          ":8000",
		LogLevel:         "info",
	}
}

// Load builds the configuration. An empty path skips the file layer;
// a path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return serr.New("config file not found: " + path)
		}
		return serr.Wrap(err, "failed to read config file", "path", path)
	}

	// Decoding onto the defaults leaves unspecified keys untouched
	if err := yaml.Unmarshal(data, c); err != nil {
		return serr.Wrap(err, "failed to parse config file", "path", path)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	strVars := map[string]*string{
		"POKEDEX_API_BASE_URL":  &c.APIBaseURL,
		"POKEDEX_VERSION_GROUP": &c.VersionGroup,
		"POKEDEX_ADDRESS":       &c.Address,
		"POKEDEX_LOG_LEVEL":     &c.LogLevel,
		"POKEDEX_CACHE_FILE":    &c.CacheFile,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"POKEDEX_LIST_LIMIT":        &c.ListLimit,
		"POKEDEX_FETCH_CONCURRENCY": &c.FetchConcurrency,
	}
	for name, dst := range intVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return serr.Wrap(err, "invalid "+name+" value, expected an integer")
		}
		*dst = n
	}

	durationVars := map[string]*time.Duration{
		"POKEDEX_REQUEST_TIMEOUT": &c.RequestTimeout,
		"POKEDEX_OPEN_DELAY":      &c.OpenDelay,
		"POKEDEX_CLOSE_DELAY":     &c.CloseDelay,
	}
	for name, dst := range durationVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return serr.Wrap(err, "invalid "+name+" value, expected duration like '500ms' or '15s'")
		}
		*dst = d
	}

	return nil
}

// Package pokeapi fetches Pokémon listings and detail records from PokéAPI.
package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"pokedex/models"
)

// DefaultBaseURL is the public PokéAPI v2 root
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// maxBodyBytes bounds a single response; detail records run to a few hundred KB
const maxBodyBytes = 8 << 20

// Client talks to one PokéAPI base URL. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *models.DetailCache
}

// NewClient creates a client. cache may be nil.
func NewClient(baseURL string, timeout time.Duration, cache *models.DetailCache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

// ListPokemon fetches the first page of limit summaries
func (c *Client) ListPokemon(ctx context.Context, limit int) ([]models.PokemonSummary, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, limit)

	var page models.SummaryPage
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, err
	}

	logger.Debug("Pokemon listing fetched", "count", len(page.Results), "total", page.Count)
	return page.Results, nil
}

// GetPokemon fetches the detail record at url, consulting the cache first
func (c *Client) GetPokemon(ctx context.Context, url string) (*models.PokemonDetail, error) {
	if d, ok := c.cache.Get(url); ok {
		return d, nil
	}

	var d models.PokemonDetail
	if err := c.getJSON(ctx, url, &d); err != nil {
		return nil, err
	}

	c.cache.Put(url, &d)
	return &d, nil
}

// getJSON performs a GET and decodes the body into v.
// Errors are *NetworkError or *MalformedResponseError.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: serr.Wrap(err, "failed to build request")}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{URL: url, Err: serr.Wrap(err, "failed to read response body")}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &MalformedResponseError{URL: url, Err: err}
	}

	logger.Debug("PokeAPI request completed", "url", url, "duration", time.Since(start))
	return nil
}

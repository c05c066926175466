// Package loader fetches the Pokémon listing, resolves every detail through a
// bounded worker pool, and renders the resulting cards into an output container.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"pokedex/dom"
	"pokedex/models"
	"pokedex/views"
)

// Fetcher is the slice of the API client the loader needs
type Fetcher interface {
	ListPokemon(ctx context.Context, limit int) ([]models.PokemonSummary, error)
	GetPokemon(ctx context.Context, url string) (*models.PokemonDetail, error)
}

// Options tunes the loader
type Options struct {
	Limit       int // listing page size
	Concurrency int // maximum detail requests in flight
}

// Item is the outcome of resolving one summary: Detail on success, Err otherwise
type Item struct {
	Summary models.PokemonSummary
	Detail  *models.PokemonDetail
	Err     error
}

// Result summarizes one load
type Result struct {
	Items    []Item // listing order
	Loaded   int
	Failed   int
	Duration time.Duration
}

// Loader renders the card grid
type Loader struct {
	fetcher  Fetcher
	doc      *dom.Document
	opts     Options
	onSelect func(*models.PokemonDetail)
}

// New creates a loader. onSelect is wired to every card's click listener.
func New(fetcher Fetcher, doc *dom.Document, opts Options, onSelect func(*models.PokemonDetail)) *Loader {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Loader{fetcher: fetcher, doc: doc, opts: opts, onSelect: onSelect}
}

// Fetch resolves the listing and every detail without touching the document.
// Only a listing failure is returned as an error; per-item failures are in the items.
func (l *Loader) Fetch(ctx context.Context) ([]Item, error) {
	summaries, err := l.fetcher.ListPokemon(ctx, l.opts.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(summaries))
	var g errgroup.Group
	g.SetLimit(l.opts.Concurrency)

	for i, s := range summaries {
		items[i].Summary = s
		g.Go(func() error {
			d, err := l.fetcher.GetPokemon(ctx, s.URL)
			if err != nil {
				items[i].Err = err
				return nil // one failed detail must not cancel the others
			}
			items[i].Detail = d
			return nil
		})
	}
	_ = g.Wait()

	return items, nil
}

// LoadAndRender fetches everything and appends one card per resolved detail to
// output in listing order. Failed details are skipped and counted in a single
// inline notice. A listing failure writes an inline message and is returned.
func (l *Loader) LoadAndRender(ctx context.Context, output *html.Node) (Result, error) {
	return l.load(ctx, output, false)
}

// LoadAndReplace is LoadAndRender, except the current children of output are
// cleared in the same event-loop step that appends the new ones. The old grid
// stays visible and clickable while the fetch runs.
func (l *Loader) LoadAndReplace(ctx context.Context, output *html.Node) (Result, error) {
	return l.load(ctx, output, true)
}

func (l *Loader) load(ctx context.Context, output *html.Node, replace bool) (Result, error) {
	start := time.Now()

	items, err := l.Fetch(ctx)
	if err != nil {
		l.doc.Run(func() {
			if replace {
				l.doc.Clear(output)
			}
			dom.Append(output, views.LoadError("Could not load the Pokédex. Please try again later."))
		})
		logger.LogErr(serr.Wrap(err, "failed to fetch pokemon listing"), "listing aborted")
		return Result{Duration: time.Since(start)}, err
	}

	res := Result{Items: items}
	l.doc.Run(func() {
		if replace {
			l.doc.Clear(output)
		}
		for _, it := range items {
			if it.Err != nil {
				res.Failed++
				logger.LogErr(it.Err, "failed to fetch pokemon detail", "pokemon", it.Summary.Name)
				continue
			}
			dom.Append(output, views.Card(l.doc, it.Detail, l.onSelect))
			res.Loaded++
		}

		if res.Failed > 0 {
			dom.Append(output, views.LoadError(failureNotice(res.Failed)))
		}
	})

	res.Duration = time.Since(start)
	logger.Info("Pokedex loaded", "loaded", res.Loaded, "failed", res.Failed, "duration", res.Duration)
	return res, nil
}

func failureNotice(n int) string {
	if n == 1 {
		return "1 Pokémon could not be loaded."
	}
	return fmt.Sprintf("%d Pokémon could not be loaded.", n)
}

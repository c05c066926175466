// Package app is the top-level controller. It owns the document, the output
// and portal mount points, the modal controller, and the loader, and hands
// explicit node handles to each of them.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"golang.org/x/net/html"

	"pokedex/config"
	"pokedex/dom"
	"pokedex/loader"
	"pokedex/modal"
	"pokedex/models"
)

const (
	OutputID = "output"
	PortalID = "portal"
)

// App wires the Pokédex together
type App struct {
	versionGroup string

	doc    *dom.Document
	output *html.Node
	portal *html.Node
	modal  *modal.Controller
	loader *loader.Loader

	loadMu   sync.Mutex // one load at a time
	onLoaded func()

	mu     sync.RWMutex
	loaded []*models.PokemonDetail // listing order, successes only
}

// New builds an App. sched may be nil for real timers.
func New(cfg *config.Config, fetcher loader.Fetcher, sched dom.Scheduler) *App {
	doc := dom.NewDocument(sched)

	output := dom.Create("div", dom.Options{Classes: []string{"output"}})
	dom.SetAttr(output, "id", OutputID)
	portal := dom.Create("div")
	dom.SetAttr(portal, "id", PortalID)

	a := &App{doc: doc, output: output, portal: portal, versionGroup: cfg.VersionGroup}
	a.modal = modal.New(doc, portal, modal.Options{
		VersionGroup: cfg.VersionGroup,
		OpenDelay:    cfg.OpenDelay,
		CloseDelay:   cfg.CloseDelay,
	})
	a.loader = loader.New(fetcher, doc,
		loader.Options{Limit: cfg.ListLimit, Concurrency: cfg.FetchConcurrency},
		a.showDetails,
	)
	return a
}

// OnLoaded registers fn to run after every load whose listing succeeded
func (a *App) OnLoaded(fn func()) {
	a.loadMu.Lock()
	defer a.loadMu.Unlock()
	a.onLoaded = fn
}

// Load renders the card grid into the output container, replacing any cards
// already there. Concurrent calls run one after the other.
func (a *App) Load(ctx context.Context) (loader.Result, error) {
	a.loadMu.Lock()
	defer a.loadMu.Unlock()

	res, err := a.loader.LoadAndReplace(ctx, a.output)

	loaded := make([]*models.PokemonDetail, 0, res.Loaded)
	for _, it := range res.Items {
		if it.Err == nil {
			loaded = append(loaded, it.Detail)
		}
	}
	a.mu.Lock()
	a.loaded = loaded
	a.mu.Unlock()

	if err == nil && a.onLoaded != nil {
		a.onLoaded()
	}
	return res, err
}

// Pokemon returns the details behind the rendered cards, in card order
func (a *App) Pokemon() []*models.PokemonDetail {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*models.PokemonDetail(nil), a.loaded...)
}

// Lookup returns the loaded detail named name
func (a *App) Lookup(name string) (*models.PokemonDetail, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.loaded {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// VersionGroup is the version group the move tables are filtered by
func (a *App) VersionGroup() string {
	return a.versionGroup
}

// Reload fetches the listing again and swaps in the new cards
func (a *App) Reload(ctx context.Context) (loader.Result, error) {
	logger.Debug("Reloading pokedex")
	return a.Load(ctx)
}

// Fetch resolves the listing without rendering
func (a *App) Fetch(ctx context.Context) ([]loader.Item, error) {
	return a.loader.Fetch(ctx)
}

// ClickCard dispatches a click on the card named name.
// It reports false when no such card is rendered.
func (a *App) ClickCard(name string) bool {
	var card *html.Node
	a.doc.Run(func() { card = dom.FindFirst(a.output, dom.ByAttr("data-name", name)) })
	if card == nil {
		return false
	}
	return a.doc.Dispatch(card, "click")
}

// CloseModal dispatches a click on the modal's close button.
// It reports false when no modal is showing.
func (a *App) CloseModal() bool {
	var btn *html.Node
	a.doc.Run(func() { btn = a.modal.CloseButton() })
	if btn == nil {
		return false
	}
	return a.doc.Dispatch(btn, "click")
}

// PortalSnapshot is the rendered portal plus what the browser needs to follow the transition
type PortalSnapshot struct {
	HTML         string
	State        modal.State
	ModalID      string
	RefreshAfter time.Duration // zero when no transition is pending
}

// RenderOutput serializes the output container
func (a *App) RenderOutput() (out string, err error) {
	a.doc.Run(func() { out, err = dom.Render(a.output) })
	if err != nil {
		return "", serr.Wrap(err, "failed to render output container")
	}
	return out, nil
}

// RenderPortal serializes the portal along with the modal state
func (a *App) RenderPortal() (PortalSnapshot, error) {
	var snap PortalSnapshot
	var err error
	a.doc.Run(func() {
		snap.HTML, err = dom.Render(a.portal)
		snap.State = a.modal.State()
		snap.ModalID = a.modal.ModalID()
		snap.RefreshAfter = a.modal.PendingDelay()
	})
	if err != nil {
		return PortalSnapshot{}, serr.Wrap(err, "failed to render portal")
	}
	return snap, nil
}

// ModalState reports the modal lifecycle state
func (a *App) ModalState() (s modal.State) {
	a.doc.Run(func() { s = a.modal.State() })
	return s
}

// showDetails is the card click listener; it runs on the event loop
func (a *App) showDetails(p *models.PokemonDetail) {
	if err := a.modal.Open(p); err != nil {
		if errors.Is(err, modal.ErrModalBusy) {
			return
		}
		logger.LogErr(serr.Wrap(err, "failed to open detail modal"), "pokemon", p.Name)
	}
}

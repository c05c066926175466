package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"pokedex/app"
	"pokedex/config"
	"pokedex/web/api"
	"pokedex/web/pages"
)

// reloadTimeout bounds a browser-triggered reload of the whole listing
const reloadTimeout = 2 * time.Minute

// handlers closes over the single App the server exposes
type handlers struct {
	app *app.App
	cfg *config.Config
}

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, a *app.App, cfg *config.Config) {
	h := handlers{app: a, cfg: cfg}

	// Full page
	s.Get("/", h.home)

	// Portal fragment, polled by the browser while a transition is pending
	s.Get("/portal", h.portal)

	// Browser events forwarded into the document
	s.Post("/cards/:name/click", h.clickCard)
	s.Post("/modal/close", h.closeModal)
	s.Post("/reload", h.reload)

	// JSON view of the loaded Pokédex
	pokemonAPI := api.Handlers{App: a}
	s.Get("/api/v1/pokemon", pokemonAPI.ListPokemon)
	s.Get("/api/v1/pokemon/:name", pokemonAPI.GetPokemon)

	s.Get("/healthz", func(ctx rweb.Context) error {
		return ctx.WriteJSON(map[string]any{"status": "ok", "modal": a.ModalState().String()})
	})
}

func (h handlers) home(ctx rweb.Context) error {
	html, err := pages.RenderHome(h.app, h.cfg.VersionGroup)
	if err != nil {
		logger.LogErr(err, "failed to render home page")
		ctx.SetStatus(http.StatusInternalServerError)
		return nil
	}
	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(html)
}

func (h handlers) portal(ctx rweb.Context) error {
	return h.writePortal(ctx)
}

func (h handlers) clickCard(ctx rweb.Context) error {
	name := ctx.Request().Param("name")
	if !h.app.ClickCard(name) {
		ctx.SetStatus(http.StatusNotFound)
		return ctx.WriteJSON(map[string]any{"error": "no card named " + name})
	}
	return h.writePortal(ctx)
}

func (h handlers) closeModal(ctx rweb.Context) error {
	// Closing an already closed modal is not an error; the portal is returned either way
	h.app.CloseModal()
	return h.writePortal(ctx)
}

func (h handlers) reload(ctx rweb.Context) error {
	c, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	// A listing failure is already rendered into the output container
	if _, err := h.app.Reload(c); err != nil {
		logger.LogErr(serr.Wrap(err, "reload failed"), "rendering error state")
	}

	out, err := h.app.RenderOutput()
	if err != nil {
		logger.LogErr(err, "failed to render output")
		ctx.SetStatus(http.StatusInternalServerError)
		return nil
	}
	return ctx.WriteHTML(out)
}

// writePortal sends the portal markup. X-Refresh-After tells the browser when
// the pending transition lands so it can fetch the next state.
func (h handlers) writePortal(ctx rweb.Context) error {
	snap, err := h.app.RenderPortal()
	if err != nil {
		logger.LogErr(err, "failed to render portal")
		ctx.SetStatus(http.StatusInternalServerError)
		return nil
	}

	ctx.Response().SetHeader("X-Modal-State", snap.State.String())
	if snap.ModalID != "" {
		ctx.Response().SetHeader("X-Modal-Id", snap.ModalID)
	}
	if snap.RefreshAfter > 0 {
		ctx.Response().SetHeader("X-Refresh-After", strconv.FormatInt(snap.RefreshAfter.Milliseconds(), 10))
	}
	return ctx.WriteHTML(snap.HTML)
}

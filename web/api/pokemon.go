package api

import (
	"net/http"

	"github.com/rohanthewiz/rweb"

	"pokedex/app"
	"pokedex/models"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// PokemonOutput is the listing row: what a card shows
type PokemonOutput struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Sprite string   `json:"sprite,omitempty"`
	Types  []string `json:"types"`
}

// StatOutput is one base stat
type StatOutput struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// MoveOutput is one level-up move
type MoveOutput struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
}

// PokemonDetailOutput is what the detail modal shows
type PokemonDetailOutput struct {
	PokemonOutput
	VersionGroup string       `json:"version_group"`
	Moves        []MoveOutput `json:"moves"`
	Stats        []StatOutput `json:"stats"`
}

func toOutput(p *models.PokemonDetail) PokemonOutput {
	sprite, _ := p.HomeSprite()
	return PokemonOutput{ID: p.ID, Name: p.Name, Sprite: sprite, Types: p.TypeNames()}
}

// Handlers serves the loaded Pokédex as JSON
type Handlers struct {
	App *app.App
}

// ListPokemon handles GET /api/v1/pokemon
// Returns the Pokémon behind the rendered cards, in card order.
func (h Handlers) ListPokemon(ctx rweb.Context) error {
	loaded := h.App.Pokemon()
	out := make([]PokemonOutput, 0, len(loaded))
	for _, p := range loaded {
		out = append(out, toOutput(p))
	}
	return writeSuccess(ctx, http.StatusOK, out)
}

// GetPokemon handles GET /api/v1/pokemon/:name
// Returns the same moves and stats the detail modal renders.
func (h Handlers) GetPokemon(ctx rweb.Context) error {
	name := ctx.Request().Param("name")
	p, ok := h.App.Lookup(name)
	if !ok {
		return writeError(ctx, http.StatusNotFound, "pokemon not loaded")
	}

	vg := h.App.VersionGroup()
	out := PokemonDetailOutput{
		PokemonOutput: toOutput(p),
		VersionGroup:  vg,
		Moves:         []MoveOutput{},
		Stats:         make([]StatOutput, 0, len(p.Stats)),
	}
	for _, m := range p.LearnedMoves(vg) {
		out.Moves = append(out.Moves, MoveOutput{Level: m.Level, Name: m.Name})
	}
	for _, s := range p.Stats {
		out.Stats = append(out.Stats, StatOutput{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return writeSuccess(ctx, http.StatusOK, out)
}

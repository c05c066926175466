package views

import (
	"golang.org/x/net/html"

	"pokedex/dom"
	"pokedex/models"
)

// Card builds the summary card for p and registers a click listener that hands
// the same detail to onSelect. Attaching the card is the caller's job.
func Card(events dom.EventTarget, p *models.PokemonDetail, onSelect func(*models.PokemonDetail)) *html.Node {
	card := dom.Create("div", dom.Options{Classes: []string{"card"}})
	dom.SetAttr(card, "data-name", p.Name)

	// No sprite, no image; the rest of the card still renders
	if src, ok := p.HomeSprite(); ok {
		dom.Append(card, dom.Create("img", dom.Options{
			Classes: []string{"sprite"},
			Src:     src,
			Alt:     p.Name,
		}))
	}

	dom.Append(card,
		dom.Create("h2", dom.Options{Text: p.Name}),
		Pills(p.TypeNames()),
	)

	if onSelect != nil {
		events.On(card, "click", func(*html.Node) { onSelect(p) })
	}
	return card
}

// Pills wraps one pill per type name, order preserved
func Pills(typeNames []string) *html.Node {
	row := dom.Create("p", dom.Options{Classes: []string{"pills"}})
	for _, name := range typeNames {
		dom.Append(row, Pill(name))
	}
	return row
}

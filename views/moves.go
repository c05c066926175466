package views

import (
	"strconv"

	"golang.org/x/net/html"

	"pokedex/dom"
	"pokedex/models"
)

// MoveTable lists the moves p learns by level-up in versionGroup.
// An empty result still yields the header and an empty body.
func MoveTable(p *models.PokemonDetail, versionGroup string) *html.Node {
	headRow := dom.Append(dom.Create("tr"),
		dom.Create("th", dom.Options{Text: "Lvl"}),
		dom.Create("th", dom.Options{Text: "Move"}),
	)

	body := dom.Create("tbody")
	for _, m := range p.LearnedMoves(versionGroup) {
		dom.Append(body, dom.Append(dom.Create("tr"),
			dom.Create("td", dom.Options{Text: strconv.Itoa(m.Level)}),
			dom.Create("td", dom.Options{Text: m.Name}),
		))
	}

	return dom.Append(dom.Create("table"),
		dom.Append(dom.Create("thead"), headRow),
		body,
	)
}

// MovesSection is the titled block holding the move table
func MovesSection(p *models.PokemonDetail, versionGroup string) *html.Node {
	return dom.Append(dom.Create("div", dom.Options{Classes: []string{"info", "info-moves"}}),
		dom.Create("h3", dom.Options{Text: "Moves", Classes: []string{"info-title"}}),
		MoveTable(p, versionGroup),
	)
}

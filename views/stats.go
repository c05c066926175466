package views

import (
	"strconv"

	"golang.org/x/net/html"

	"pokedex/dom"
	"pokedex/models"
)

// StatTable renders base stats in the order received with a bar per stat.
// The bar width is the raw base value in percent; values over 100 overflow.
func StatTable(p *models.PokemonDetail) *html.Node {
	body := dom.Create("tbody")
	for _, s := range p.Stats {
		value := strconv.Itoa(s.BaseStat)

		fill := dom.Create("div", dom.Options{
			Classes: []string{"stats-bar-fill"},
			Styles:  dom.Styles{{Prop: "width", Value: value + "%"}},
		})
		bar := dom.Append(dom.Create("div", dom.Options{Classes: []string{"stats-bar"}}), fill)

		dom.Append(body, dom.Append(dom.Create("tr"),
			dom.Create("td", dom.Options{Text: s.Stat.Name}),
			dom.Create("td", dom.Options{Text: value}),
			dom.Append(dom.Create("td", dom.Options{Classes: []string{"stats-bar-td"}}), bar),
		))
	}

	return dom.Append(dom.Create("table"), body)
}

// StatsSection is the titled block holding the stat table
func StatsSection(p *models.PokemonDetail) *html.Node {
	return dom.Append(dom.Create("div", dom.Options{Classes: []string{"info", "info-stats"}}),
		dom.Create("h3", dom.Options{Text: "Base stats", Classes: []string{"info-title"}}),
		StatTable(p),
	)
}

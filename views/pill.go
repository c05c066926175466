// Package views builds the document fragments of the Pokédex: type pills,
// cards, move and stat tables, and the detail modal.
package views

import (
	"strings"

	"golang.org/x/net/html"

	"pokedex/dom"
)

// Pill returns a badge for one type. The lowercased name doubles as a class
// so the stylesheet can color it.
func Pill(typeName string) *html.Node {
	return dom.Create("span", dom.Options{
		Text:    typeName,
		Classes: []string{"pill", strings.ToLower(typeName)},
	})
}

package views

import (
	"golang.org/x/net/html"

	"pokedex/dom"
)

// LoadError is the inline message shown in the output container when loading fails
func LoadError(msg string) *html.Node {
	n := dom.Create("p", dom.Options{Text: msg, Classes: []string{"load-error"}})
	dom.SetAttr(n, "role", "alert")
	return n
}

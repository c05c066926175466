// Package pages contains the page components for the application.
// This file defines the Pokédex home page.
package pages

import (
	"html"

	"pokedex/app"
	"pokedex/web/pages/comps"
	"pokedex/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Home is the single page of the Pokédex. Output and Portal hold the
// document's already-rendered mount points; the page only frames them.
type Home struct {
	// EMBEDDED STRUCT: Home gets Title, Banner() and Footer() from shared.Page
	shared.Page

	VersionGroup string
	Output       string
	Portal       string
}

// RenderHome snapshots the App's mount points into a full HTML document
func RenderHome(a *app.App, versionGroup string) (string, error) {
	output, err := a.RenderOutput()
	if err != nil {
		return "", err
	}
	portal, err := a.RenderPortal()
	if err != nil {
		return "", err
	}

	return Home{
		Page:         shared.Page{Title: "Pokédex"},
		VersionGroup: versionGroup,
		Output:       output,
		Portal:       portal.HTML,
	}.Render(), nil
}

// Render generates the complete HTML for the page
func (h Home) Render() (out string) {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(html.EscapeString(h.Title)),
			b.Link("rel", "icon", "href", "/favicon.ico"),
			b.Link("rel", "stylesheet", "href", "/static/css/pokedex.css"),
		),
		b.Body().R(
			element.RenderComponents(b,
				h.Banner(),
				comps.Heading{Title: "Moves as learned in " + h.VersionGroup},
			),

			// Pre-rendered document fragments; the dom package already escaped their text
			b.T(h.Output),
			b.T(h.Portal),

			element.RenderComponents(b, h.Footer()),
			b.Script("src", "/static/js/pokedex.js").R(),
		),
	)

	return b.String()
}

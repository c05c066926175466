package shared

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Banner is the red header bar at the top of every page
type Banner struct {
	Title string
}

// Render implements element.Component. The reload button is picked up by
// pokedex.js through its data-action attribute.
func (b Banner) Render(builder *element.Builder) any {
	builder.Header("style", "display:flex;align-items:center;justify-content:space-between;background-color:#e3350d;color:white;padding:12px 16px").R(
		builder.H1("style", "margin:0").T(html.EscapeString(b.Title)),
		builder.Button("type", "button", "data-action", "reload").T("Reload"),
	)
	return nil
}

package comps

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Heading is the subtitle line under the banner. Title is plain text.
type Heading struct {
	Title string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.P("class", "subtitle", "style", "margin:8px 16px;color:#555").T(html.EscapeString(h.Title))
	return
}

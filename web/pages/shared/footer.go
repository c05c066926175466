package shared

import "github.com/rohanthewiz/element"

// Footer credits the data source
type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Div("style", "padding:12px 16px;color:gray;font-size:.85rem").R(
		b.P().T(`Data from <a href="https://pokeapi.co">PokéAPI</a>`),
	)
	return nil
}

package views

import (
	"golang.org/x/net/html"

	"pokedex/dom"
	"pokedex/models"
)

// ActiveClass switches the modal overlay and card into their visible state
const ActiveClass = "active"

// DetailView is a composed modal plus handles to the nodes the controller toggles
type DetailView struct {
	Overlay *html.Node // div.modal, the node inserted into the portal
	Card    *html.Node // div.modal-card
	Close   *html.Node // the "Voltar" button
}

// Detail composes the modal for p. Neither the overlay nor the card carries the
// active class yet, so a transition can run once it is added.
func Detail(p *models.PokemonDetail, versionGroup string) DetailView {
	closeBtn := dom.Create("button", dom.Options{Text: "Voltar"})
	dom.SetAttr(closeBtn, "type", "button")
	dom.SetAttr(closeBtn, "data-action", "close")

	imgBox := dom.Create("div", dom.Options{Classes: []string{"poke-img"}})
	if src, ok := p.HomeSprite(); ok {
		dom.Append(imgBox, dom.Create("img", dom.Options{Src: src, Alt: p.Name}))
	}

	card := dom.Append(dom.Create("div", dom.Options{Classes: []string{"modal-card"}}),
		dom.Append(dom.Create("div", dom.Options{Classes: []string{"modal-actions"}}), closeBtn),
		imgBox,
		dom.Create("h2", dom.Options{Text: p.Name}),
		dom.Append(dom.Create("div", dom.Options{Classes: []string{"info-group"}}),
			MovesSection(p, versionGroup),
			StatsSection(p),
		),
	)

	overlay := dom.Append(dom.Create("div", dom.Options{Classes: []string{"modal"}}), card)

	return DetailView{Overlay: overlay, Card: card, Close: closeBtn}
}

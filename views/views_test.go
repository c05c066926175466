package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"pokedex/dom"
	"pokedex/models"
)

const fireRed = "firered-leafgreen"

func testPokemon(name string, types ...string) *models.PokemonDetail {
	sprite := "https://img.test/" + name + ".png"
	p := &models.PokemonDetail{Name: name}
	p.Sprites.Other.Home.FrontDefault = &sprite
	for i, t := range types {
		p.Types = append(p.Types, models.TypeSlot{Slot: i + 1, Type: models.NamedRef{Name: t}})
	}
	return p
}

func withMove(p *models.PokemonDetail, name, group string, level int) {
	p.Moves = append(p.Moves, models.MoveEntry{
		Move: models.NamedRef{Name: name},
		VersionGroupDetails: []models.VersionGroupDetails{
			{VersionGroup: models.NamedRef{Name: group}, LevelLearnedAt: level},
		},
	})
}

func bodyRows(t *testing.T, table *html.Node) [][]string {
	t.Helper()
	tbody := dom.FindFirst(table, dom.ByTag("tbody"))
	require.NotNil(t, tbody)

	var rows [][]string
	for _, tr := range dom.Children(tbody) {
		var cells []string
		for _, td := range dom.Children(tr) {
			cells = append(cells, dom.TextContent(td))
		}
		rows = append(rows, cells)
	}
	return rows
}

func TestPillClassesAndText(t *testing.T) {
	for _, name := range []string{"fire", "Grass", "PSYCHIC", "Dragon-Ish"} {
		pill := Pill(name)

		assert.Equal(t, "span", pill.Data)
		assert.Equal(t, name, dom.TextContent(pill))
		assert.True(t, dom.HasClass(pill, "pill"), name)
		assert.True(t, dom.HasClass(pill, strings.ToLower(name)), name)
	}
}

func TestCardStructure(t *testing.T) {
	doc := dom.NewDocument(nil)
	p := testPokemon("charizard", "fire", "flying")

	var card *html.Node
	doc.Run(func() { card = Card(doc, p, nil) })

	assert.True(t, dom.HasClass(card, "card"))
	name, _ := dom.Attr(card, "data-name")
	assert.Equal(t, "charizard", name)

	img := dom.FindFirst(card, dom.ByTag("img"))
	require.NotNil(t, img)
	src, _ := dom.Attr(img, "src")
	alt, _ := dom.Attr(img, "alt")
	assert.Equal(t, "https://img.test/charizard.png", src)
	assert.Equal(t, "charizard", alt)

	assert.Equal(t, "charizard", dom.TextContent(dom.FindFirst(card, dom.ByTag("h2"))))

	pills := dom.Children(dom.FindFirst(card, dom.ByClass("pills")))
	require.Len(t, pills, 2)
	assert.Equal(t, "fire", dom.TextContent(pills[0]))
	assert.Equal(t, "flying", dom.TextContent(pills[1]))
}

func TestCardPillCountMatchesTypes(t *testing.T) {
	doc := dom.NewDocument(nil)
	cases := [][]string{nil, {"normal"}, {"bug", "poison"}, {"a", "b", "c"}}

	for _, types := range cases {
		var card *html.Node
		doc.Run(func() { card = Card(doc, testPokemon("x", types...), nil) })

		pills := dom.Children(dom.FindFirst(card, dom.ByClass("pills")))
		require.Len(t, pills, len(types))
		for i, typ := range types {
			assert.Equal(t, typ, dom.TextContent(pills[i]))
		}
	}
}

func TestCardWithoutSpriteOmitsImage(t *testing.T) {
	doc := dom.NewDocument(nil)
	p := &models.PokemonDetail{Name: "missingno"}

	var card *html.Node
	doc.Run(func() { card = Card(doc, p, nil) })

	assert.Nil(t, dom.FindFirst(card, dom.ByTag("img")))
	assert.NotNil(t, dom.FindFirst(card, dom.ByTag("h2")))
}

func TestCardClickPassesCapturedDetail(t *testing.T) {
	doc := dom.NewDocument(nil)
	p := testPokemon("pikachu", "electric")

	var selected *models.PokemonDetail
	var card *html.Node
	doc.Run(func() {
		card = Card(doc, p, func(d *models.PokemonDetail) { selected = d })
	})

	// A click on a child bubbles to the card
	require.True(t, doc.Dispatch(dom.FindFirst(card, dom.ByTag("h2")), "click"))
	assert.Same(t, p, selected)
}

func TestMoveTableFiltering(t *testing.T) {
	p := testPokemon("squirtle", "water")
	withMove(p, "tackle", fireRed, 1)
	withMove(p, "cut", "other", 5)
	withMove(p, "surf", fireRed, 0)

	table := MoveTable(p, fireRed)

	head := dom.FindFirst(table, dom.ByTag("thead"))
	require.NotNil(t, head)
	var headers []string
	for _, th := range dom.FindAll(head, dom.ByTag("th")) {
		headers = append(headers, dom.TextContent(th))
	}
	assert.Equal(t, []string{"Lvl", "Move"}, headers)

	assert.Equal(t, [][]string{{"1", "tackle"}}, bodyRows(t, table))
}

func TestMoveTableOrder(t *testing.T) {
	p := testPokemon("oddish", "grass")
	withMove(p, "acid", fireRed, 10)
	withMove(p, "absorb", fireRed, 1)
	withMove(p, "poison-powder", fireRed, 10)
	withMove(p, "sweet-scent", fireRed, 5)

	assert.Equal(t, [][]string{
		{"1", "absorb"},
		{"5", "sweet-scent"},
		{"10", "acid"},
		{"10", "poison-powder"},
	}, bodyRows(t, MoveTable(p, fireRed)))
}

func TestMoveTableEmpty(t *testing.T) {
	table := MoveTable(testPokemon("ditto", "normal"), fireRed)

	assert.NotNil(t, dom.FindFirst(table, dom.ByTag("thead")))
	assert.Empty(t, bodyRows(t, table))
}

func TestStatTable(t *testing.T) {
	p := testPokemon("mew", "psychic")
	p.Stats = []models.StatEntry{
		{Stat: models.NamedRef{Name: "hp"}, BaseStat: 55},
		{Stat: models.NamedRef{Name: "attack"}, BaseStat: 130},
	}

	table := StatTable(p)
	assert.Nil(t, dom.FindFirst(table, dom.ByTag("thead")))

	rows := bodyRows(t, table)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"hp", "55", ""}, rows[0])
	assert.Equal(t, []string{"attack", "130", ""}, rows[1])

	fills := dom.FindAll(table, dom.ByClass("stats-bar-fill"))
	require.Len(t, fills, 2)
	style, _ := dom.Attr(fills[0], "style")
	assert.Equal(t, "width:55%;", style)
	style, _ = dom.Attr(fills[1], "style")
	assert.Equal(t, "width:130%;", style)

	assert.Len(t, dom.FindAll(table, dom.ByClass("stats-bar-td")), 2)
}

func TestDetailComposition(t *testing.T) {
	p := testPokemon("gengar", "ghost", "poison")
	withMove(p, "lick", fireRed, 1)
	p.Stats = []models.StatEntry{{Stat: models.NamedRef{Name: "speed"}, BaseStat: 110}}

	v := Detail(p, fireRed)

	assert.True(t, dom.HasClass(v.Overlay, "modal"))
	assert.True(t, dom.HasClass(v.Card, "modal-card"))
	assert.False(t, dom.HasClass(v.Overlay, ActiveClass))
	assert.False(t, dom.HasClass(v.Card, ActiveClass))
	assert.Same(t, v.Overlay, v.Card.Parent)

	assert.Equal(t, "Voltar", dom.TextContent(v.Close))
	assert.NotNil(t, dom.FindFirst(v.Card, dom.ByClass("poke-img")))
	assert.Equal(t, "gengar", dom.TextContent(dom.FindFirst(v.Card, dom.ByTag("h2"))))

	group := dom.FindFirst(v.Card, dom.ByClass("info-group"))
	require.NotNil(t, group)
	sections := dom.Children(group)
	require.Len(t, sections, 2)
	assert.True(t, dom.HasClass(sections[0], "info-moves"))
	assert.True(t, dom.HasClass(sections[1], "info-stats"))

	var titles []string
	for _, h := range dom.FindAll(group, dom.ByClass("info-title")) {
		titles = append(titles, dom.TextContent(h))
	}
	assert.Equal(t, []string{"Moves", "Base stats"}, titles)
}

func TestLoadError(t *testing.T) {
	n := LoadError("could not load")
	out, err := dom.Render(n)
	require.NoError(t, err)
	assert.Contains(t, out, `class="load-error"`)
	assert.Contains(t, out, "could not load")
}

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/loader"
	"pokedex/models"
)

func TestWriteListKeepsOrderAndCountsFailures(t *testing.T) {
	items := []loader.Item{
		{Summary: models.PokemonSummary{Name: "vulpix"}, Detail: &models.PokemonDetail{
			Name:  "vulpix",
			Types: []models.TypeSlot{{Slot: 1, Type: models.NamedRef{Name: "fire"}}},
		}},
		{Summary: models.PokemonSummary{Name: "ninetales"}, Err: errors.New("boom")},
		{Summary: models.PokemonSummary{Name: "zubat"}, Detail: &models.PokemonDetail{
			Name: "zubat",
			Types: []models.TypeSlot{
				{Slot: 1, Type: models.NamedRef{Name: "poison"}},
				{Slot: 2, Type: models.NamedRef{Name: "flying"}},
			},
		}},
	}

	var buf bytes.Buffer
	writeList(&buf, items)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "vulpix")
	assert.Contains(t, lines[0], "fire")
	assert.Contains(t, lines[1], "zubat")
	assert.Less(t, strings.Index(lines[1], "poison"), strings.Index(lines[1], "flying"))
	assert.Contains(t, lines[2], "1 Pokémon could not be loaded.")
	assert.NotContains(t, out, "ninetales")
}

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "render", "list"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fireRed = "firered-leafgreen"

func move(name string, details ...VersionGroupDetails) MoveEntry {
	return MoveEntry{Move: NamedRef{Name: name}, VersionGroupDetails: details}
}

func learnedIn(group string, level int) VersionGroupDetails {
	return VersionGroupDetails{VersionGroup: NamedRef{Name: group}, LevelLearnedAt: level}
}

func TestLearnedMovesFiltersByGroupAndLevel(t *testing.T) {
	p := &PokemonDetail{Moves: []MoveEntry{
		move("tackle", learnedIn(fireRed, 1)),
		move("cut", learnedIn("other", 5)),
		move("surf", learnedIn(fireRed, 0)),
	}}

	assert.Equal(t, []LearnedMove{{Name: "tackle", Level: 1}}, p.LearnedMoves(fireRed))
}

func TestLearnedMovesStableAscending(t *testing.T) {
	p := &PokemonDetail{Moves: []MoveEntry{
		move("razor-leaf", learnedIn(fireRed, 10)),
		move("growl", learnedIn(fireRed, 1)),
		move("vine-whip", learnedIn(fireRed, 10)),
		move("leech-seed", learnedIn(fireRed, 5)),
	}}

	assert.Equal(t, []LearnedMove{
		{Name: "growl", Level: 1},
		{Name: "leech-seed", Level: 5},
		{Name: "razor-leaf", Level: 10},
		{Name: "vine-whip", Level: 10},
	}, p.LearnedMoves(fireRed))
}

func TestLearnedMovesUsesFirstMatchingDetail(t *testing.T) {
	p := &PokemonDetail{Moves: []MoveEntry{
		move("ember", learnedIn("red-blue", 9), learnedIn(fireRed, 0), learnedIn(fireRed, 7)),
	}}

	assert.Empty(t, p.LearnedMoves(fireRed))
	assert.Equal(t, []LearnedMove{{Name: "ember", Level: 9}}, p.LearnedMoves("red-blue"))
}

func TestHomeSprite(t *testing.T) {
	url := "https://img.test/25.png"
	p := &PokemonDetail{}
	p.Sprites.Other.Home.FrontDefault = &url

	got, ok := p.HomeSprite()
	assert.True(t, ok)
	assert.Equal(t, url, got)

	_, ok = (&PokemonDetail{}).HomeSprite()
	assert.False(t, ok)
}

func TestDetailCachePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "details.msgpack")

	c, err := OpenDetailCache(path)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	sprite := "https://img.test/1.png"
	d := &PokemonDetail{ID: 1, Name: "bulbasaur", Types: []TypeSlot{{Slot: 1, Type: NamedRef{Name: "grass"}}}}
	d.Sprites.Other.Home.FrontDefault = &sprite
	c.Put("https://api.test/pokemon/1/", d)
	require.NoError(t, c.Save())

	reopened, err := OpenDetailCache(path)
	require.NoError(t, err)
	got, ok := reopened.Get("https://api.test/pokemon/1/")
	require.True(t, ok)
	assert.Equal(t, "bulbasaur", got.Name)
	assert.Equal(t, []string{"grass"}, got.TypeNames())
	gotSprite, _ := got.HomeSprite()
	assert.Equal(t, sprite, gotSprite)
}

func TestNilDetailCache(t *testing.T) {
	var c *DetailCache
	c.Put("x", &PokemonDetail{})
	_, ok := c.Get("x")
	assert.False(t, ok)
	assert.NoError(t, c.Save())
	assert.Equal(t, 0, c.Len())
}

package models

import "sort"

// PokemonSummary is one entry of the paginated listing, used only to fetch the detail
type PokemonSummary struct {
	Name string `json:"name" msgpack:"name"`
	URL  string `json:"url" msgpack:"url"`
}

// SummaryPage is the listing endpoint's response envelope
type SummaryPage struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []PokemonSummary `json:"results"`
}

// NamedRef is the {name, url} pair the API uses for every cross reference
type NamedRef struct {
	Name string `json:"name" msgpack:"name"`
	URL  string `json:"url" msgpack:"url"`
}

// PokemonDetail is the full record for one Pokémon. It is read-only once decoded.
type PokemonDetail struct {
	ID      int         `json:"id" msgpack:"id"`
	Name    string      `json:"name" msgpack:"name"`
	Sprites Sprites     `json:"sprites" msgpack:"sprites"`
	Types   []TypeSlot  `json:"types" msgpack:"types"`
	Moves   []MoveEntry `json:"moves" msgpack:"moves"`
	Stats   []StatEntry `json:"stats" msgpack:"stats"`
}

type Sprites struct {
	FrontDefault *string      `json:"front_default" msgpack:"front_default"`
	Other        OtherSprites `json:"other" msgpack:"other"`
}

type OtherSprites struct {
	Home HomeSprites `json:"home" msgpack:"home"`
}

type HomeSprites struct {
	FrontDefault *string `json:"front_default" msgpack:"front_default"`
}

type TypeSlot struct {
	Slot int      `json:"slot" msgpack:"slot"`
	Type NamedRef `json:"type" msgpack:"type"`
}

type MoveEntry struct {
	Move                NamedRef              `json:"move" msgpack:"move"`
	VersionGroupDetails []VersionGroupDetails `json:"version_group_details" msgpack:"version_group_details"`
}

type VersionGroupDetails struct {
	LevelLearnedAt  int      `json:"level_learned_at" msgpack:"level_learned_at"`
	MoveLearnMethod NamedRef `json:"move_learn_method" msgpack:"move_learn_method"`
	VersionGroup    NamedRef `json:"version_group" msgpack:"version_group"`
}

type StatEntry struct {
	BaseStat int      `json:"base_stat" msgpack:"base_stat"`
	Effort   int      `json:"effort" msgpack:"effort"`
	Stat     NamedRef `json:"stat" msgpack:"stat"`
}

// LearnedMove is a move learned by level-up in one version group
type LearnedMove struct {
	Name  string
	Level int
}

// HomeSprite returns sprites.other.home.front_default and whether it is present
func (p *PokemonDetail) HomeSprite() (string, bool) {
	if p == nil || p.Sprites.Other.Home.FrontDefault == nil || *p.Sprites.Other.Home.FrontDefault == "" {
		return "", false
	}
	return *p.Sprites.Other.Home.FrontDefault, true
}

// TypeNames returns the type names in slot order as received
func (p *PokemonDetail) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// LearnedMoves returns the moves learned by level-up in versionGroup, ascending by level.
// For each move only the first detail for versionGroup is considered; a level of 0
// means the move is learned some other way (machine, tutor, egg) and it is dropped.
// Equal levels keep their input order.
func (p *PokemonDetail) LearnedMoves(versionGroup string) []LearnedMove {
	var learned []LearnedMove
	for _, m := range p.Moves {
		vgd, ok := m.detailFor(versionGroup)
		if !ok || vgd.LevelLearnedAt == 0 {
			continue
		}
		learned = append(learned, LearnedMove{Name: m.Move.Name, Level: vgd.LevelLearnedAt})
	}

	sort.SliceStable(learned, func(i, j int) bool {
		return learned[i].Level < learned[j].Level
	})
	return learned
}

func (m MoveEntry) detailFor(versionGroup string) (VersionGroupDetails, bool) {
	for _, d := range m.VersionGroupDetails {
		if d.VersionGroup.Name == versionGroup {
			return d, true
		}
	}
	return VersionGroupDetails{}, false
}

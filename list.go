package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pokedex/app"
	"pokedex/loader"
)

// typeColors mirrors the pill colors of the stylesheet
var typeColors = map[string]string{
	"normal": "#a8a77a", "fire": "#ee8130", "water": "#6390f0", "electric": "#f7d02c",
	"grass": "#7ac74c", "ice": "#96d9d6", "fighting": "#c22e28", "poison": "#a33ea1",
	"ground": "#e2bf65", "flying": "#a98ff3", "psychic": "#f95587", "bug": "#a6b91a",
	"rock": "#b6a136", "ghost": "#735797", "dragon": "#6f35fc", "dark": "#705746",
	"steel": "#b7b7ce", "fairy": "#d685ad",
}

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Width(16)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b00020"))
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the Pokédex to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			d, err := bootstrap(flags)
			if err != nil {
				return err
			}

			items, err := app.New(d.cfg, d.client, nil).Fetch(ctx)
			if err != nil {
				return err
			}
			d.saveCache()

			writeList(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

// writeList prints one line per Pokémon, listing order kept, failures at the end
func writeList(w io.Writer, items []loader.Item) {
	failed := 0
	for _, it := range items {
		if it.Err != nil {
			failed++
			continue
		}
		pills := make([]string, 0, len(it.Detail.Types))
		for _, name := range it.Detail.TypeNames() {
			pills = append(pills, typePill(name))
		}
		fmt.Fprintf(w, "%s %s\n", nameStyle.Render(it.Detail.Name), strings.Join(pills, " "))
	}

	if failed > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d Pokémon could not be loaded.", failed)))
	}
}

func typePill(name string) string {
	color, ok := typeColors[strings.ToLower(name)]
	if !ok {
		color = "#888888"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(name)
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the variants with their records",
	Long: `Shows every variant, how it judges hits and, when the scores database
can be opened, how many runs were flown on it and the best score.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	// Records are a bonus; the list works without them
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("VARIANT", "TITLE", "HITS", "RUNS", "BEST")
	for _, v := range variants {
		runs, best := "-", "-"
		if s, ok := stats[v.ID]; ok && s.GamesCount > 0 {
			runs = humanize.Comma(int64(s.GamesCount))
			best = humanize.Comma(int64(s.HighScore))
		}
		t.Row(v.ID, v.Title, v.Description, runs, best)
	}

	fmt.Println(t.Render())
	fmt.Println()
	fmt.Println("Run 'asteroids play <variant>' to fly one.")
}

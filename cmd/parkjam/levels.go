package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/levels"
	"github.com/vovakirdan/parkjam/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long:  `Shows every level with its difficulty, time limit and your best score.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	all := levels.All()
	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Best scores are optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-10s  %-10s  %-6s  %-6s  %-5s  %s\n", "ID", "Name", "Difficulty", "Time", "Start", "Cars", "Best")
	fmt.Printf("  %-3s  %-10s  %-10s  %-6s  %-6s  %-5s  %s\n", "--", "----", "----------", "----", "-----", "----", "----")

	for _, l := range all {
		best := "-"
		if store != nil {
			if score, err := store.BestScore(l.ID); err == nil && score > 0 {
				best = fmt.Sprintf("%d", score)
			}
		}
		fmt.Printf("  %-3d  %-10s  %-10s  %-6s  %-6d  %-5d  %s\n",
			l.ID, l.Name, l.Difficulty, fmt.Sprintf("%.0fs", l.Duration), l.StartScore, len(l.Vehicles), best)
	}

	fmt.Println()
	fmt.Println("Run 'parkjam --level <id>' to jump straight into a level.")
}

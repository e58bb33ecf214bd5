package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/levels"
	"github.com/vovakirdan/parkjam/internal/platform/tui"
	"github.com/vovakirdan/parkjam/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best winning runs",
	Long: `Display the top 10 winning runs of a level, or of all levels when no
level is given.

Examples:
  parkjam scores
  parkjam scores 2
  parkjam scores --tui
  parkjam scores 2 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded results of the level (all levels without one)")
}

func runScores(_ *cobra.Command, args []string) {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > levels.Count() {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'parkjam levels' to see available levels.")
			os.Exit(1)
		}
		level = n
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		clearScores(store, level)
	case flagScoresTUI:
		browseScores(store)
	default:
		printScores(store, level)
	}
}

func clearScores(store *storage.Store, level int) {
	if err := store.ClearResults(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
		return
	}
	if level == 0 {
		fmt.Println("Cleared results of all levels.")
		return
	}
	fmt.Printf("Cleared results of level %d.\n", level)
}

func browseScores(store *storage.Store) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	names := levels.Names()
	infos := make([]tui.LevelInfo, len(names))
	for i, name := range names {
		infos[i] = tui.LevelInfo{ID: i + 1, Name: name}
	}

	if err := tui.RunScoreboard(store, infos, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
	}
}

func printScores(store *storage.Store, level int) {
	results, err := store.TopResults(level, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	if level == 0 {
		fmt.Println("Best Runs - All Levels")
	} else {
		fmt.Printf("Best Runs - Level %d\n", level)
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Println("Run 'parkjam' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-6s  %-10s  %s\n", "Rank", "Level", "Score", "Moves", "Left", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-6s  %-10s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-6d  %-5d  %-6s  %-10s  %s\n",
			i+1, r.Level, r.Score, r.Moves, fmt.Sprintf("%.1fs", r.Remaining), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if level == 0 {
		return
	}

	stats, err := store.LevelStats(level)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Fewest moves: %d\n",
			stats.Runs, stats.Wins, stats.BestScore, stats.FewestMoves)
	}
}

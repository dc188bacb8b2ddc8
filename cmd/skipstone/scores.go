package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skipstone/internal/platform/tui"
	"github.com/vovakirdan/skipstone/internal/storage"
)

var flagScoresTable bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs, ranked by score.

Examples:
  skipstone scores
  skipstone scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresTable, "interactive", "i", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if browseErr := tui.RunScoreboard(store, width, height); browseErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", browseErr)
			os.Exit(1)
		}
		return
	}

	// Get top runs
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Stone Skipper")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skipstone play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Distance", "Skips", "Combo", "Coins", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "--------", "-----", "-----", "-----", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-9.1fm  %-6d  x%-5d  %-6d  %s\n",
			i+1, entry.Score, entry.Distance, entry.Skips, entry.BestCombo, entry.Coins, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, hsErr := store.HighScore(); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

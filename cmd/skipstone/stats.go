package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skipstone/internal/storage"
)

var flagStatsClear bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long: `Display aggregated statistics across all recorded runs: totals,
bests, and averages.

Examples:
  skipstone stats
  skipstone stats --clear`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded runs (keeps the wallet and upgrades)")
}

func runStats(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if clearErr := store.ClearRuns(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("All recorded runs deleted.")
		return
	}

	stats, err := store.Lifetime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	coins, err := store.Coins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading wallet: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Lifetime Statistics - Stone Skipper")
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skipstone play' to record the first run!")
		return
	}

	fmt.Printf("  Runs:           %d\n", stats.Runs)
	fmt.Printf("  Best score:     %d\n", stats.BestScore)
	fmt.Printf("  Best distance:  %.1fm\n", stats.BestDistance)
	fmt.Printf("  Total skips:    %d\n", stats.TotalSkips)
	fmt.Printf("  Coins earned:   %d\n", stats.TotalCoins)
	fmt.Printf("  Average score:  %.1f\n", stats.AvgScore)
	fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("  Wallet:         %d coins\n", coins)
}

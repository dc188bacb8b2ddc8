// skipstone is a terminal stone-skipping arcade game.
//
// Usage:
//
//	skipstone play           - Throw stones
//	skipstone shop           - Spend coins on permanent upgrades
//	skipstone scores         - Show the best runs
//	skipstone stats          - Show lifetime statistics
//	skipstone serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skipstone/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/skipstone/internal/games/skip"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skipstone",
	Short: "Skip stones across an endless procedural lake",
	Long: `Skipstone is a physics arcade game played in the terminal: drag to
launch a stone across the water, bounce off floating targets, and see how
far it gets before it sinks. Coins earned along the way buy permanent
upgrades for the next throw.

Available commands:
  play     - Throw stones
  shop     - Spend coins on permanent upgrades
  scores   - View the best runs
  stats    - Lifetime statistics
  serve    - Start SSH server for remote play

Examples:
  skipstone play
  skipstone play --difficulty hard
  skipstone shop
  skipstone serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skipstone/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

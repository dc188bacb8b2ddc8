package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skipstone/internal/config"
	"github.com/vovakirdan/skipstone/internal/core"
	"github.com/vovakirdan/skipstone/internal/games/skip"
	"github.com/vovakirdan/skipstone/internal/platform/audio"
	"github.com/vovakirdan/skipstone/internal/platform/tui"
	"github.com/vovakirdan/skipstone/internal/registry"
	"github.com/vovakirdan/skipstone/internal/shop"
	"github.com/vovakirdan/skipstone/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Throw stones",
	Long: `Start a run: aim with the mouse (drag down and to the left, release
to launch) or with the arrow keys (adjust the pull, space to launch).

Controls:
  Mouse drag - Aim and launch
  Arrows/hjkl- Adjust keyboard aim
  Space      - Launch keyboard aim
  D/S/Down   - Dive mid-flight
  P/Esc      - Pause
  R          - Restart (after the stone sinks)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses with distance
  normal - Start at 30% difficulty, progresses with distance
  hard   - Start at 70% difficulty, progresses with distance
  fixed  - No progression, stays at the config's initial level

Examples:
  skipstone play
  skipstone play --difficulty hard
  skipstone play --config ./my-skip.yaml
  skipstone play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	skip.SetConfigPath(flagConfig)
	skip.SetDifficultyPreset(flagDifficulty)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Apply the persistent wallet and upgrades to the stone
	if store != nil {
		tuning, tuningErr := config.LoadSkip(flagConfig)
		if tuningErr != nil {
			tuning = config.DefaultSkipConfig()
		}
		svc := shop.NewService(store)
		if stats, statsErr := svc.PlayerStats(tuning.Player); statsErr == nil {
			coins, _ := store.Coins()
			skip.SetProfile(skip.Profile{Stats: stats, Currency: coins})
		}
		if best, bestErr := store.HighScore(); bestErr == nil {
			skip.SetHighScore(best)
		}
	}

	game, err := registry.Create("skip")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Audio is best-effort; a headless box just plays silent
	var sound *audio.Engine
	if !flagMute {
		sound = audio.NewEngine()
		if soundErr := sound.Init(); soundErr != nil {
			sound = nil
		}
	}

	runErr := tui.Run(game, store, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

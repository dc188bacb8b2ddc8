// Package skip implements the stone-skipping arcade game. A stone is
// launched across an endless water surface, bounces off floating numbered
// targets and the water itself, and earns score and coins until it sinks.
package skip

import (
	"time"

	"github.com/vovakirdan/skipstone/internal/config"
	"github.com/vovakirdan/skipstone/internal/core"
	"github.com/vovakirdan/skipstone/internal/registry"
)

// World-to-screen scale: world units per terminal cell. Cells are roughly
// twice as tall as wide, so the vertical scale doubles the horizontal one.
const (
	cellW = 4.0
	cellH = 8.0

	startX        = 100.0 // world x of the launch point
	metersPerUnit = 0.1   // HUD distance conversion
)

// Package-level settings applied to the next created game. The platform
// sets these before registry.Create, mirroring the CLI flag flow.
var (
	configPath       string
	difficultyPreset string
	startProfile     *Profile
	savedHighScore   int
)

// SetConfigPath sets a custom config file path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
// Valid values: easy, normal, hard, fixed. Empty uses the config file.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetProfile injects the persisted player profile (upgrade-derived stats and
// wallet) used to initialize the stone before the first run.
func SetProfile(p Profile) {
	startProfile = &p
}

// SetHighScore injects the all-time best score for the HUD.
func SetHighScore(score int) {
	savedHighScore = score
}

// Game is the complete simulation state, owned and exclusively mutated by
// Step. External collaborators only read snapshots between ticks.
type Game struct {
	cfg    core.RuntimeConfig
	tuning config.SkipConfig
	diff   *config.DifficultyManager

	mode   Mode
	player Player
	stream *TargetStream
	camera Camera
	stats  RunStats

	profile   Profile
	highScore int

	tick      uint64
	clock     float64 // shared oscillation clock, seconds
	restTicks int
	maxX      float64 // furthest x reached, keeps distance monotone
	paused    bool

	aim       core.Drag // last gesture sample, for the aiming indicator
	events    []core.Event
	particles ParticlePool
	floaters  []floater
}

// New creates a new game instance.
func New() *Game {
	g := &Game{mode: ModeMenu}

	tuning, err := config.LoadSkip(configPath)
	if err != nil {
		tuning = config.DefaultSkipConfig()
	}
	g.tuning = tuning
	if difficultyPreset != "" {
		config.ApplySkipPreset(&g.tuning, config.DifficultyPreset(difficultyPreset))
	}
	g.diff = config.NewDifficultyManager(g.tuning.Difficulty)

	if startProfile != nil {
		g.profile = *startProfile
	} else {
		g.profile = Profile{Stats: StatsFromConfig(g.tuning.Player)}
	}
	g.highScore = savedHighScore

	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skip"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stone Skipper"
}

// Reset initializes or restarts the game, starting a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	if g.cfg.TickRate <= 0 {
		g.cfg.TickRate = 60
	}

	pc := g.tuning.Player
	g.player = Player{
		X:     startX,
		Stats: g.profile.Stats,
	}
	g.player.Radius = pc.BaseRadius + g.player.Stats.Weight*pc.RadiusPerWeight
	g.player.Y = -g.player.Radius // resting on the water line

	g.stats.reset()
	g.camera = Camera{}
	g.tick = 0
	g.clock = 0
	g.restTicks = 0
	g.maxX = startX
	g.paused = false
	g.aim = core.Drag{}
	g.events = g.events[:0]
	g.floaters = g.floaters[:0]

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if g.stream == nil {
		g.stream = NewTargetStream(seed, g.tuning.Targets, g.diff)
	} else {
		g.stream.Reset(seed)
	}
	g.particles.Reset(seed + 1)

	// Guarantee targets exist ahead of the camera before any collision
	// check runs.
	g.stream.Maintain(g.camera.X, g.viewW(), 0)

	g.mode = ModeMenu
	g.transition(ModeAiming)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.mode == ModeGameOver {
		// Waiting for an explicit run reset.
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock += 1.0 / float64(g.cfg.TickRate)
	g.aim = in.Drag

	switch g.mode {
	case ModeAiming:
		g.handleLaunch(in)
	case ModeFlying:
		if in.Has(core.ActionDive) {
			g.handleDive()
		}
		g.integrateFlying()
		if g.mode == ModeFlying {
			g.resolveCollisions()
		}
	case ModeSinking:
		g.integrateSinking()
	}

	if g.player.X > g.maxX {
		g.maxX = g.player.X
	}
	g.stats.Distance = (g.maxX - startX) * metersPerUnit

	g.camera.Follow(g.player.X, g.player.Y, g.viewW(), g.viewH(), g.tuning.Camera)
	g.stream.Maintain(g.camera.X, g.viewW(), g.maxX-startX)
	g.particles.Update()
	g.updateFloaters()

	return core.StepResult{State: g.State(), Events: g.events}
}

// emit queues an effect event for this tick's collaborators.
func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// viewW returns the viewport width in world units.
func (g *Game) viewW() float64 {
	return float64(g.cfg.ScreenW) * cellW
}

// viewH returns the viewport height in world units.
func (g *Game) viewH() float64 {
	return float64(g.cfg.ScreenH) * cellH
}

// SetBestScore raises the all-time best shown in the HUD. Lower values are
// ignored.
func (g *Game) SetBestScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Mode returns the current simulation mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Stats returns the current run stats.
func (g *Game) Stats() RunStats {
	return g.stats
}

// State returns the current game state as seen by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		Currency: g.stats.Currency,
		Combo:    g.stats.Combo,
		Distance: g.stats.Distance,
		Mode:     g.mode.String(),
		GameOver: g.mode == ModeGameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("skip", func() registry.Game {
		return New()
	})
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skipstone/internal/core"
	"github.com/vovakirdan/skipstone/internal/games/skip"
	"github.com/vovakirdan/skipstone/internal/platform/audio"
	"github.com/vovakirdan/skipstone/internal/registry"
	"github.com/vovakirdan/skipstone/internal/storage"
)

// Gesture units per terminal cell. Cells are roughly twice as tall as wide,
// so the vertical factor doubles the horizontal one; a drag reads the same
// regardless of direction.
const (
	gestureScaleX = 4.0
	gestureScaleY = 8.0
)

// aimKeyStep is the pull change per keyboard aiming keypress, in gesture
// units.
const aimKeyStep = 15.0

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Engine
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	drag     core.Drag // mouse gesture, written by mouse events only
	keyAim   core.Vec2 // keyboard-built pull, used when the mouse is idle
	aiming   bool      // keyboard aim in progress
	quitting bool
	runSaved bool // whether the finished run has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, sound *audio.Engine, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Keyboard aiming only applies while waiting for a launch and while the
	// mouse is not mid-gesture.
	if m.gameState.Mode == "aiming" && !m.drag.Active {
		if delta := aimKeyDelta(key); delta != (core.Vec2{}) {
			m.keyAim = m.keyAim.Add(delta)
			m.aiming = true
			return m, nil
		}
		if m.aiming && isAimRelease(key) {
			m.drag = core.Drag{
				Released: true,
				Current:  core.Vec2{X: -m.keyAim.X, Y: -m.keyAim.Y},
			}
			m.keyAim = core.Vec2{}
			m.aiming = false
			return m, nil
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse maintains the drag gesture from mouse press/motion/release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pt := core.Vec2{
		X: float64(msg.X) * gestureScaleX,
		Y: float64(msg.Y) * gestureScaleY,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = core.Drag{Active: true, Start: pt, Current: pt}
			m.keyAim = core.Vec2{}
			m.aiming = false
		}
	case tea.MouseActionMotion:
		if m.drag.Active {
			m.drag.Current = pt
		}
	case tea.MouseActionRelease:
		if m.drag.Active {
			m.drag.Active = false
			m.drag.Released = true
			m.drag.Current = pt
		}
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in world
// units, so a resize only changes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over: new seed, fresh run.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		m.drag = core.Drag{}
		return m, tickCmd(m.config.TickRate)
	}

	// Show the live keyboard aim as an in-progress drag so the indicator
	// renders.
	if m.aiming && !m.drag.Active && !m.drag.Released {
		m.inputFrame.Drag = core.Drag{
			Active:  true,
			Current: core.Vec2{X: -m.keyAim.X, Y: -m.keyAim.Y},
		}
	} else {
		m.inputFrame.Drag = m.drag
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		m.sound.Handle(result.Events, m.gameState.Combo)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	if m.drag.Released {
		m.drag = core.Drag{}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run and banks its coins. Best-effort: a
// missing store or a write failure never interrupts play.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	entry := storage.RunEntry{
		Distance: m.gameState.Distance,
		Score:    m.gameState.Score,
		Coins:    m.gameState.Currency,
	}
	if sg, ok := m.game.(*skip.Game); ok {
		stats := sg.Stats()
		entry.Skips = stats.Skips
		entry.BestCombo = stats.BestCombo
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(entry)

	// Refresh the HUD's all-time best for the next run.
	if sg, ok := m.game.(*skip.Game); ok {
		if best, err := m.store.HighScore(); err == nil {
			sg.SetBestScore(best)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skipstone", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sound *audio.Engine, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag-to-aim needs motion events
	)

	_, err := p.Run()
	return err
}

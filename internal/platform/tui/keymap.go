package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skipstone/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "d", "s", "down":
		return core.ActionDive, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// aimKeyDelta returns the pull adjustment for keyboard aiming keys. Zero
// when the key is not an aiming key. Left pulls backward (stronger forward
// launch), up raises the arc.
func aimKeyDelta(key string) core.Vec2 {
	switch key {
	case "left", "h":
		return core.Vec2{X: aimKeyStep}
	case "right", "l":
		return core.Vec2{X: -aimKeyStep}
	case "up", "k":
		return core.Vec2{Y: -aimKeyStep}
	case "j":
		return core.Vec2{Y: aimKeyStep}
	}
	return core.Vec2{}
}

// isAimRelease reports whether the key fires the keyboard-aimed launch.
func isAimRelease(key string) bool {
	return key == " "
}

package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionDive           // D, down arrow - mid-flight downward impulse
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDive:
		return "Dive"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Drag is the aiming gesture record. The input collaborator (mouse or
// keyboard) is its single writer; the launch logic reads it once per tick.
// Coordinates are in gesture units, already corrected for the terminal's
// cell aspect ratio by the platform.
type Drag struct {
	Active   bool // gesture in progress (button held)
	Released bool // gesture released this frame - launch attempt
	Start    Vec2 // where the gesture began
	Current  Vec2 // latest sample (release point when Released)
}

// Pull returns the drag vector: start point minus current point.
// A pull down and to the left yields positive X (backward pull) and
// negative Y (upward launch).
func (d Drag) Pull() Vec2 {
	return Vec2{X: d.Start.X - d.Current.X, Y: d.Start.Y - d.Current.Y}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Drag carries the current aiming gesture state.
	Drag Drag
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the one-shot drag release for the next frame.
// An in-progress drag survives across frames; only the release is one-shot.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	if f.Drag.Released {
		f.Drag = Drag{}
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Drag = f.Drag
	return clone
}

package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int     // Current run score
	Currency int     // Coins earned this run
	Combo    int     // Current skip combo
	Distance float64 // Distance travelled this run, meters
	Mode     string  // Human-readable simulation mode for the HUD
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
}

// EventKind identifies a discrete effect event emitted by the simulation.
// Events are consumed once per tick by the render/audio collaborators and
// then discarded; they never feed back into physics state.
type EventKind int

const (
	EventLaunch EventKind = iota
	EventPerfectLaunch
	EventWrongDirection
	EventDive
	EventSkip
	EventSmash
	EventCoin
	EventBoost
	EventMultiHit
	EventBreak
	EventSink
	EventWaterSkip
	EventFloat
	EventRest
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventPerfectLaunch:
		return "perfect_launch"
	case EventWrongDirection:
		return "wrong_direction"
	case EventDive:
		return "dive"
	case EventSkip:
		return "skip"
	case EventSmash:
		return "smash"
	case EventCoin:
		return "coin"
	case EventBoost:
		return "boost"
	case EventMultiHit:
		return "multi_hit"
	case EventBreak:
		return "break"
	case EventSink:
		return "sink"
	case EventWaterSkip:
		return "water_skip"
	case EventFloat:
		return "float"
	case EventRest:
		return "rest"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification from the simulation: a sound
// trigger, floating text, or screen shake cue for the collaborators.
type Event struct {
	Kind   EventKind
	X, Y   float64 // world position of the event, for placed effects
	Amount int     // score/currency delta where applicable
	Text   string  // floating text payload, empty if none
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

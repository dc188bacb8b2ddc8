package skip

// Mode is the discrete simulation mode. The Game owns the single
// authoritative value; collision and launch logic request transitions but
// only transition() mutates it.
type Mode int

const (
	ModeMenu Mode = iota
	ModeAiming
	ModeFlying
	ModeSinking
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeAiming:
		return "aiming"
	case ModeFlying:
		return "flying"
	case ModeSinking:
		return "sinking"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// legalTransitions encodes the full transition table. Anything absent is
// rejected.
var legalTransitions = map[Mode][]Mode{
	ModeMenu:     {ModeAiming},
	ModeAiming:   {ModeFlying},
	ModeFlying:   {ModeAiming, ModeSinking},
	ModeSinking:  {ModeGameOver},
	ModeGameOver: {ModeAiming},
}

// transition moves the state machine to the requested mode if the transition
// is legal. Returns whether the transition happened.
func (g *Game) transition(to Mode) bool {
	for _, m := range legalTransitions[g.mode] {
		if m == to {
			g.mode = to
			return true
		}
	}
	return false
}

// RunStats accumulates per-run results. Reset on run start; mutated only by
// collision resolution and the per-tick distance update.
type RunStats struct {
	Distance  float64 // meters travelled since launch point
	Skips     int     // successful target/water skips
	Score     int
	Currency  int // coins earned this run, banked on game over
	Combo     int // consecutive skips since the last sink or water miss
	BestCombo int
}

// reset zeroes the stats for a new run.
func (r *RunStats) reset() {
	*r = RunStats{}
}

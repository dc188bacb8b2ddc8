package skip

import (
	"math"

	"github.com/vovakirdan/skipstone/internal/config"
	"github.com/vovakirdan/skipstone/internal/core"
)

// LaunchOutcome is the result of evaluating a release gesture.
type LaunchOutcome int

const (
	// LaunchTooShort: the drag was below the minimum distance; nothing
	// happens and aiming continues.
	LaunchTooShort LaunchOutcome = iota
	// LaunchWrongDirection: the pull was inverted; aiming continues and the
	// player gets feedback.
	LaunchWrongDirection
	Launched
	LaunchedPerfect
)

// ComputeLaunch converts a pull vector (gesture start minus release point)
// into a launch velocity. A pull down and to the left launches up and to the
// right. The perfect bonus applies before the max-power clamp so an upgraded
// cap still bounds the result.
func ComputeLaunch(pull core.Vec2, stats Stats, cfg config.LaunchConfig) (vx, vy float64, outcome LaunchOutcome) {
	dist := pull.Len()
	if dist < cfg.MinDragDist {
		return 0, 0, LaunchTooShort
	}
	if pull.X <= 0 {
		return 0, 0, LaunchWrongDirection
	}

	vx = pull.X * cfg.PowerScale
	vy = -math.Abs(pull.Y) * cfg.PowerScale

	perfect := dist >= cfg.MaxDragDist*cfg.PerfectFraction
	if perfect {
		vx *= cfg.PerfectBonus
		vy *= cfg.PerfectBonus
	}

	// Minimum upward bias so a near-flat drag still clears the water.
	if vy > -cfg.MinUpward {
		vy = -cfg.MinUpward
	}

	if speed := math.Hypot(vx, vy); speed > stats.MaxPower {
		scale := stats.MaxPower / speed
		vx *= scale
		vy *= scale
	}

	if vx < cfg.MinHorizontal {
		vx = cfg.MinHorizontal
	}

	if perfect {
		return vx, vy, LaunchedPerfect
	}
	return vx, vy, Launched
}

// handleLaunch reads the gesture record once at release and, on a valid
// pull, applies the velocity and transitions AIMING -> FLYING.
func (g *Game) handleLaunch(in core.InputFrame) {
	if !in.Drag.Released {
		return
	}

	p := &g.player
	vx, vy, outcome := ComputeLaunch(in.Drag.Pull(), p.Stats, g.tuning.Launch)

	switch outcome {
	case LaunchTooShort:
		// No-op; stay in AIMING.
	case LaunchWrongDirection:
		g.emit(core.Event{Kind: core.EventWrongDirection, X: p.X, Y: p.Y})
	case Launched, LaunchedPerfect:
		p.VX, p.VY = vx, vy
		p.VR = vx * spinFactor
		g.restTicks = 0
		g.transition(ModeFlying)
		if outcome == LaunchedPerfect {
			g.addFloater(p.X, p.Y-12, "PERFECT!", core.ColorBrightYellow)
			g.emit(core.Event{Kind: core.EventPerfectLaunch, X: p.X, Y: p.Y})
		} else {
			g.emit(core.Event{Kind: core.EventLaunch, X: p.X, Y: p.Y})
		}
	}
}

// handleDive applies the mid-flight dive impulse.
func (g *Game) handleDive() {
	p := &g.player
	p.VY += g.tuning.Launch.DiveImpulse
	g.emit(core.Event{Kind: core.EventDive, X: p.X, Y: p.Y})
}

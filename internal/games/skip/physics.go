package skip

import (
	"math"

	"github.com/vovakirdan/skipstone/internal/core"
)

// integrateFlying advances the stone one tick while airborne: gravity scaled
// by weight, multiplicative drag (aerodynamics on the horizontal axis only),
// spin decay, sanitize, upward speed clamp, then position integration.
func (g *Game) integrateFlying() {
	p := &g.player
	ph := g.tuning.Physics

	p.VY += ph.Gravity * p.Stats.Weight
	p.VX *= ph.AirDrag * p.Stats.Aerodynamics
	p.VY *= ph.AirDrag

	p.Rot += p.VR
	p.VR *= ph.SpinDecay

	p.SanitizeKinematics()

	// Upward is negative y; cap how fast the stone may climb.
	if p.VY < -ph.MaxUpwardSpeed {
		p.VY = -ph.MaxUpwardSpeed
	}

	p.X += p.VX
	p.Y += p.VY

	g.detectRest()
}

// detectRest returns control to the player once the stone has been slow for
// long enough, whether resting on a target or floating on water.
func (g *Game) detectRest() {
	p := &g.player
	ph := g.tuning.Physics

	if p.Speed() < ph.RestSpeed {
		g.restTicks++
	} else {
		g.restTicks = 0
	}

	if g.restTicks >= ph.RestTicks {
		p.VX, p.VY, p.VR = 0, 0, 0
		g.restTicks = 0
		if g.transition(ModeAiming) {
			g.emit(core.Event{Kind: core.EventRest, X: p.X, Y: p.Y})
		}
	}
}

// integrateSinking advances the stone underwater: reduced gravity, decaying
// horizontal drift, no collision checks. The run ends once the stone drops
// below the world bound or its drift dies out.
func (g *Game) integrateSinking() {
	p := &g.player
	ph := g.tuning.Physics

	p.VY += ph.SinkGravity
	p.VX *= ph.SinkDrag

	p.SanitizeKinematics()

	p.X += p.VX
	p.Y += p.VY

	if p.Y > ph.SinkDepth || math.Abs(p.VX) < ph.SinkStopSpeed {
		if g.transition(ModeGameOver) {
			g.emit(core.Event{Kind: core.EventGameOver, X: p.X, Y: p.Y})
		}
	}
}
